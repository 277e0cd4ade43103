// Package routes provides an ordered path-pattern table with first-match
// resolution. Patterns are literal segments and ":name" parameter segments:
//
//	/
//	/city/:name
//	/upload/:city
//
// A table is compiled once and is safe for concurrent reads thereafter.
package routes

// Route binds a path pattern to the identifier of a view.
// Its position in the table determines precedence.
type Route struct {
	Pattern string
	View    string
}

// Params holds the named parameters extracted from a matched path.
// Values are URL-decoded and never empty.
type Params map[string]string

// Get returns the named parameter, or "" when absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Match is the result of resolving a path against a table.
type Match struct {
	Route  Route
	Params Params
}
