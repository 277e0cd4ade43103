// Package router combines a compiled route table with a navigation history.
package router

import (
	"github.com/JaimeStill/city-lens/pkg/history"
	"github.com/JaimeStill/city-lens/pkg/routes"
)

// Router resolves paths against a route table and records navigation
// in a history. Construct one per application and pass it explicitly.
type Router struct {
	table   *routes.Table
	history history.History
}

// New creates a router over the table and history.
func New(table *routes.Table, h history.History) *Router {
	return &Router{table: table, history: h}
}

// Routes returns the declared routes in order.
func (r *Router) Routes() []routes.Route {
	return r.table.Routes()
}

// Strategy returns the history strategy in use.
func (r *Router) Strategy() history.Strategy {
	return r.history.Strategy()
}

// ServesDeepLinks reports whether non-root locations appear as request
// paths. Only browser history exposes them to the server.
func (r *Router) ServesDeepLinks() bool {
	return r.history.Strategy() == history.StrategyBrowser
}

// Resolve matches path without changing navigation state.
func (r *Router) Resolve(path string) (routes.Match, error) {
	return r.table.Resolve(path)
}

// Navigate resolves path and pushes it onto the history.
// An unmatched path leaves the history untouched.
func (r *Router) Navigate(path string) (routes.Match, error) {
	m, err := r.table.Resolve(path)
	if err != nil {
		return routes.Match{}, err
	}
	r.history.Push(path)
	return m, nil
}

// Current resolves the current history location.
func (r *Router) Current() (routes.Match, error) {
	return r.table.Resolve(r.history.Location())
}

// Back moves to the previous location, reporting whether it moved.
func (r *Router) Back() bool {
	return r.history.Back()
}

// Forward moves to the next location, reporting whether it moved.
func (r *Router) Forward() bool {
	return r.history.Forward()
}

// Href returns the URL for path under the history strategy.
func (r *Router) Href(path string) string {
	return r.history.Href(path)
}

// HrefFor builds the path for a view and returns its URL.
func (r *Router) HrefFor(view string, params routes.Params) (string, error) {
	path, err := r.table.Build(view, params)
	if err != nil {
		return "", err
	}
	return r.history.Href(path), nil
}
