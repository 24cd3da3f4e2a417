// Package router maps navigation paths to view names.
package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("route not found")
	ErrRedirectLoop  = errors.New("redirect loop")
	ErrInvalidRoute  = errors.New("invalid route")
	ErrDuplicatePath = errors.New("duplicate route path")
)

// View names.
const (
	ViewCounter = "counter"
)

// Route either renders a view or redirects to another path. Paths match
// in full after normalization.
type Route struct {
	Path       string
	RedirectTo string
	View       string
}

// Match is the result of resolving a path.
type Match struct {
	Path string
	View string
	// Redirects lists the paths that were redirected away from, in order.
	Redirects []string
}

type Router struct {
	routes map[string]Route
}

// New builds a router from routes.
func New(routes ...Route) (*Router, error) {
	r := &Router{routes: make(map[string]Route, len(routes))}
	for _, rt := range routes {
		rt.Path = Normalize(rt.Path)
		if (rt.View == "") == (rt.RedirectTo == "") {
			return nil, fmt.Errorf("%w: %q must set exactly one of view or redirect", ErrInvalidRoute, rt.Path)
		}
		if _, ok := r.routes[rt.Path]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, rt.Path)
		}
		if rt.RedirectTo != "" {
			rt.RedirectTo = Normalize(rt.RedirectTo)
		}
		r.routes[rt.Path] = rt
	}
	return r, nil
}

// Default returns the application routes: the empty path redirects to
// the counter view.
func Default() *Router {
	r, err := New(
		Route{Path: "", RedirectTo: ViewCounter},
		Route{Path: ViewCounter, View: ViewCounter},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve follows redirects from path and returns the view to render.
func (r *Router) Resolve(path string) (Match, error) {
	path = Normalize(path)
	seen := make(map[string]bool)
	var m Match

	for {
		if seen[path] {
			return Match{}, fmt.Errorf("%w: %s -> %s", ErrRedirectLoop, strings.Join(m.Redirects, " -> "), path)
		}
		seen[path] = true

		rt, ok := r.routes[path]
		if !ok {
			return Match{}, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		if rt.RedirectTo == "" {
			m.Path = path
			m.View = rt.View
			return m, nil
		}
		m.Redirects = append(m.Redirects, path)
		path = rt.RedirectTo
	}
}

// Normalize trims whitespace and surrounding slashes.
func Normalize(path string) string {
	return strings.Trim(strings.TrimSpace(path), "/")
}
