package routes

import (
	"fmt"
	"strings"
)

// Table is an ordered, immutable set of compiled routes.
type Table struct {
	patterns []pattern
}

// Compile validates the routes in declaration order and returns the table.
// It fails on a malformed pattern or on a route that an earlier route
// shadows completely.
func Compile(routes []Route) (*Table, error) {
	patterns := make([]pattern, 0, len(routes))

	for _, r := range routes {
		p, err := compilePattern(r)
		if err != nil {
			return nil, err
		}

		for _, prev := range patterns {
			if prev.shadows(p) {
				return nil, fmt.Errorf("%w: %s is shadowed by %s", ErrUnreachableRoute, r.Pattern, prev.route.Pattern)
			}
		}

		patterns = append(patterns, p)
	}

	return &Table{patterns: patterns}, nil
}

// Routes returns the declared routes in order.
func (t *Table) Routes() []Route {
	routes := make([]Route, len(t.patterns))
	for i, p := range t.patterns {
		routes[i] = p.route
	}
	return routes
}

// Resolve returns the first route whose pattern matches path.
// The path is in escaped form; any query or fragment is ignored.
func (t *Table) Resolve(path string) (Match, error) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		return Match{}, fmt.Errorf("%w: %q", ErrNotFound, path)
	}

	parts := splitSegments(path)
	for _, p := range t.patterns {
		if params, ok := p.match(parts); ok {
			return Match{Route: p.route, Params: params}, nil
		}
	}

	return Match{}, fmt.Errorf("%w: %q", ErrNotFound, path)
}

// Build returns the concrete path of the first route bound to view.
func (t *Table) Build(view string, params Params) (string, error) {
	for _, p := range t.patterns {
		if p.route.View == view {
			return p.build(params)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownView, view)
}
