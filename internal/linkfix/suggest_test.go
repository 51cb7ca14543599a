package linkfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestName(t *testing.T) {
	names := []string{"GETTING_STARTED.md", "guide.md", "api.md"}

	assert.Equal(t, "guide.md", NearestName("guides.md", names))
	assert.Equal(t, "api.md", NearestName("apis.md", names))
}

func TestNearestName_NothingClose(t *testing.T) {
	assert.Empty(t, NearestName("zz.md", []string{"completely-different.md"}))
	assert.Empty(t, NearestName("a.md", nil))
}
