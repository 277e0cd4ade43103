package routes

import "errors"

var (
	// ErrInvalidPattern indicates a malformed route pattern.
	ErrInvalidPattern = errors.New("routes: invalid pattern")

	// ErrUnreachableRoute indicates a route that an earlier route always shadows.
	ErrUnreachableRoute = errors.New("routes: unreachable route")

	// ErrNotFound indicates that no route matches the path.
	ErrNotFound = errors.New("routes: no matching route")

	// ErrUnknownView indicates that no route is bound to the view.
	ErrUnknownView = errors.New("routes: unknown view")

	// ErrMissingParam indicates a required parameter was not supplied to Build.
	ErrMissingParam = errors.New("routes: missing parameter")
)
