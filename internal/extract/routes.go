package extract

import (
	"regexp"
	"strings"
)

// Route is one HTTP route registration or client-side route element found in
// a source file.
type Route struct {
	Path         string
	Method       string
	File         string
	Kind         string // "express" or "react"
	AuthRequired bool
	RoleRequired string
}

var (
	expressPattern = regexp.MustCompile("(?:router|app)\\.(get|post|put|patch|delete|use)\\(['\"`]([^'\"`]+)['\"`]")
	reactPattern   = regexp.MustCompile("<Route\\s+path=['\"`]([^'\"`]+)['\"`]")
	rolePattern    = regexp.MustCompile(`requireRole\(\[([^\]]+)\]\)`)
)

// Routes extracts server and client route definitions from content.
func Routes(file string, content []byte) []Route {
	text := string(content)
	routes := make([]Route, 0)

	for _, match := range expressPattern.FindAllStringSubmatch(text, -1) {
		routes = append(routes, Route{
			Path:   match[2],
			Method: strings.ToUpper(match[1]),
			File:   file,
			Kind:   "express",
		})
	}

	for _, match := range reactPattern.FindAllStringSubmatch(text, -1) {
		routes = append(routes, Route{
			Path:   match[1],
			Method: "GET",
			File:   file,
			Kind:   "react",
		})
	}

	return routes
}

// AuthRequirements inspects route-handler content for authentication
// middleware and role restrictions.
func AuthRequirements(content []byte) (authRequired bool, roleRequired string) {
	text := string(content)
	if strings.Contains(text, "authenticate") || strings.Contains(text, "requireAuth") {
		authRequired = true
	}
	if match := rolePattern.FindStringSubmatch(text); match != nil {
		roleRequired = match[1]
	}
	return authRequired, roleRequired
}
