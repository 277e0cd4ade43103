package routes_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/city-lens/pkg/routes"
)

var testRoutes = []routes.Route{
	{Pattern: "/", View: "home"},
	{Pattern: "/city/:name", View: "city"},
	{Pattern: "/upload/:city", View: "upload"},
}

func mustCompile(t *testing.T, rs []routes.Route) *routes.Table {
	t.Helper()
	table, err := routes.Compile(rs)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return table
}

func TestCompile(t *testing.T) {
	table := mustCompile(t, testRoutes)

	got := table.Routes()
	if len(got) != len(testRoutes) {
		t.Fatalf("len(Routes()) = %d, want %d", len(got), len(testRoutes))
	}
	for i := range testRoutes {
		if got[i] != testRoutes[i] {
			t.Errorf("Routes()[%d] = %+v, want %+v", i, got[i], testRoutes[i])
		}
	}
}

func TestCompile_RoutesReturnsCopy(t *testing.T) {
	table := mustCompile(t, testRoutes)

	got := table.Routes()
	got[0].View = "changed"

	if table.Routes()[0].View != "home" {
		t.Error("modifying Routes() result changed the table")
	}
}

func TestCompile_InvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"no leading slash", "city/:name"},
		{"empty segment", "/city//:name"},
		{"double slash root", "//"},
		{"empty param name", "/city/:"},
		{"param starts with digit", "/city/:1name"},
		{"param with dash", "/city/:city-name"},
		{"repeated param", "/:a/:a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := routes.Compile([]routes.Route{{Pattern: tt.pattern, View: "v"}})
			if !errors.Is(err, routes.ErrInvalidPattern) {
				t.Errorf("Compile(%q) error = %v, want ErrInvalidPattern", tt.pattern, err)
			}
		})
	}
}

func TestCompile_UnreachableRoute(t *testing.T) {
	tests := []struct {
		name   string
		routes []routes.Route
	}{
		{
			"duplicate pattern",
			[]routes.Route{{Pattern: "/city/:name", View: "a"}, {Pattern: "/city/:name", View: "b"}},
		},
		{
			"renamed parameter",
			[]routes.Route{{Pattern: "/city/:name", View: "a"}, {Pattern: "/city/:id", View: "b"}},
		},
		{
			"literal after parameter",
			[]routes.Route{{Pattern: "/city/:name", View: "a"}, {Pattern: "/city/boston", View: "b"}},
		},
		{
			"duplicate root",
			[]routes.Route{{Pattern: "/", View: "a"}, {Pattern: "/", View: "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := routes.Compile(tt.routes)
			if !errors.Is(err, routes.ErrUnreachableRoute) {
				t.Errorf("Compile() error = %v, want ErrUnreachableRoute", err)
			}
		})
	}
}

func TestCompile_LiteralBeforeParameter(t *testing.T) {
	table := mustCompile(t, []routes.Route{
		{Pattern: "/city/boston", View: "boston"},
		{Pattern: "/city/:name", View: "city"},
	})

	m, err := table.Resolve("/city/boston")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if m.Route.View != "boston" {
		t.Errorf("View = %q, want %q", m.Route.View, "boston")
	}

	m, err = table.Resolve("/city/denver")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if m.Route.View != "city" {
		t.Errorf("View = %q, want %q", m.Route.View, "city")
	}
}

func TestResolve(t *testing.T) {
	table := mustCompile(t, testRoutes)

	tests := []struct {
		name   string
		path   string
		view   string
		params routes.Params
	}{
		{"root", "/", "home", routes.Params{}},
		{"city", "/city/Boston", "city", routes.Params{"name": "Boston"}},
		{"upload", "/upload/Denver", "upload", routes.Params{"city": "Denver"}},
		{"decoded space", "/city/New%20York", "city", routes.Params{"name": "New York"}},
		{"decoded slash", "/city/a%2Fb", "city", routes.Params{"name": "a/b"}},
		{"unicode", "/city/S%C3%A3o%20Paulo", "city", routes.Params{"name": "São Paulo"}},
		{"trailing slash", "/city/Boston/", "city", routes.Params{"name": "Boston"}},
		{"query ignored", "/upload/Denver?step=2", "upload", routes.Params{"city": "Denver"}},
		{"fragment ignored", "/city/Boston#top", "city", routes.Params{"name": "Boston"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := table.Resolve(tt.path)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.path, err)
			}

			if m.Route.View != tt.view {
				t.Errorf("View = %q, want %q", m.Route.View, tt.view)
			}

			if m.Params == nil {
				t.Fatal("Params is nil, want non-nil")
			}

			if len(m.Params) != len(tt.params) {
				t.Fatalf("Params = %v, want %v", m.Params, tt.params)
			}

			for k, v := range tt.params {
				if m.Params.Get(k) != v {
					t.Errorf("Params[%q] = %q, want %q", k, m.Params.Get(k), v)
				}
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	table := mustCompile(t, testRoutes)

	paths := []string{
		"/nonexistent",
		"/city",
		"/city/",
		"/city//",
		"/city/Boston/extra",
		"/CITY/Boston",
		"/upload",
		"//",
		"city/Boston",
		"",
		"/city/%zz",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			_, err := table.Resolve(path)
			if !errors.Is(err, routes.ErrNotFound) {
				t.Errorf("Resolve(%q) error = %v, want ErrNotFound", path, err)
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	table := mustCompile(t, testRoutes)

	for range 3 {
		if _, err := table.Resolve("/nonexistent"); !errors.Is(err, routes.ErrNotFound) {
			t.Fatalf("Resolve() error = %v, want ErrNotFound", err)
		}

		m, err := table.Resolve("/city/Boston")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if m.Params.Get("name") != "Boston" {
			t.Errorf("name = %q, want %q", m.Params.Get("name"), "Boston")
		}
	}
}

func TestBuild(t *testing.T) {
	table := mustCompile(t, testRoutes)

	tests := []struct {
		name   string
		view   string
		params routes.Params
		want   string
	}{
		{"root", "home", nil, "/"},
		{"city", "city", routes.Params{"name": "Boston"}, "/city/Boston"},
		{"escaped", "city", routes.Params{"name": "New York"}, "/city/New%20York"},
		{"upload", "upload", routes.Params{"city": "Denver"}, "/upload/Denver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Build(tt.view, tt.params)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}

			m, err := table.Resolve(got)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", got, err)
			}
			if m.Route.View != tt.view {
				t.Errorf("round trip View = %q, want %q", m.Route.View, tt.view)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	table := mustCompile(t, testRoutes)

	if _, err := table.Build("missing", nil); !errors.Is(err, routes.ErrUnknownView) {
		t.Errorf("Build(missing) error = %v, want ErrUnknownView", err)
	}

	if _, err := table.Build("city", routes.Params{}); !errors.Is(err, routes.ErrMissingParam) {
		t.Errorf("Build(city) error = %v, want ErrMissingParam", err)
	}
}
