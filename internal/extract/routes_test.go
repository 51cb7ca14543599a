package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_Express(t *testing.T) {
	content := []byte(`
router.get('/api/v1/orders', authenticate, listOrders)
router.post('/api/v1/orders', authenticate, requireRole(['admin', 'manager']), createOrder)
app.use('/api/v1/menu', menuRouter)
`)

	routes := Routes("server/routes/orders.ts", content)

	require.Len(t, routes, 3)
	assert.Equal(t, Route{Path: "/api/v1/orders", Method: "GET", File: "server/routes/orders.ts", Kind: "express"}, routes[0])
	assert.Equal(t, "POST", routes[1].Method)
	assert.Equal(t, "USE", routes[2].Method)

	auth, role := AuthRequirements(content)
	assert.True(t, auth)
	assert.Equal(t, "'admin', 'manager'", role)
}

func TestRoutes_React(t *testing.T) {
	content := []byte(`<Route path="/kitchen" element={<KitchenView />} />`)

	routes := Routes("client/src/App.tsx", content)

	require.Len(t, routes, 1)
	assert.Equal(t, Route{Path: "/kitchen", Method: "GET", File: "client/src/App.tsx", Kind: "react"}, routes[0])
}

func TestAuthRequirements_None(t *testing.T) {
	auth, role := AuthRequirements([]byte(`router.get('/health', healthCheck)`))

	assert.False(t, auth)
	assert.Empty(t, role)
}
