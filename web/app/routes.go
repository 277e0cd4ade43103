package app

import (
	"fmt"

	"github.com/JaimeStill/city-lens/pkg/history"
	"github.com/JaimeStill/city-lens/pkg/router"
	"github.com/JaimeStill/city-lens/pkg/routes"
)

// View identifiers bound by the route table.
const (
	ViewHome   = "home"
	ViewCity   = "city"
	ViewUpload = "upload"
)

// BuildRoutes returns the application's route table in precedence order.
// Each call returns a new slice with the same entries.
func BuildRoutes() []routes.Route {
	return []routes.Route{
		{Pattern: "/", View: ViewHome},
		{Pattern: "/city/:name", View: ViewCity},
		{Pattern: "/upload/:city", View: ViewUpload},
	}
}

// BuildRouter compiles rs and pairs it with a history of the given strategy
// rooted at base. Any error is a startup failure.
func BuildRouter(rs []routes.Route, strategy history.Strategy, base string) (*router.Router, error) {
	table, err := routes.Compile(rs)
	if err != nil {
		return nil, fmt.Errorf("compile routes: %w", err)
	}

	h, err := history.New(strategy, base)
	if err != nil {
		return nil, fmt.Errorf("create history: %w", err)
	}

	return router.New(table, h), nil
}
