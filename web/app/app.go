// Package app serves the city views: a landing page, a page per city, and
// an upload page per city. Paths are resolved through the route table in
// routes.go and rendered from embedded templates.
package app

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/docker/go-units"

	"github.com/JaimeStill/city-lens/internal/config"
	"github.com/JaimeStill/city-lens/pkg/router"
	"github.com/JaimeStill/city-lens/pkg/routes"
	"github.com/JaimeStill/city-lens/pkg/web"
)

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var views = []web.ViewDef{
	{Name: ViewHome, Template: "home.html", Title: "Cities"},
	{Name: ViewCity, Template: "city.html", Title: "City"},
	{Name: ViewUpload, Template: "upload.html", Title: "Upload"},
}

var notFoundView = web.ViewDef{Name: "not-found", Template: "404.html", Title: "Not Found"}

var featuredCities = []string{"Boston", "Denver", "New York"}

// Handler dispatches requests to the view bound by the route table.
type Handler struct {
	router        *router.Router
	templates     *web.TemplateSet
	mux           *web.Router
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler builds the router and parses all view templates. cfg must be
// finalized.
func NewHandler(cfg *config.AppConfig, logger *slog.Logger) (*Handler, error) {
	r, err := BuildRouter(BuildRoutes(), cfg.History, cfg.BasePath)
	if err != nil {
		return nil, err
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		strings.TrimSuffix(cfg.BasePath, "/"),
		append(views, notFoundView),
	)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		router:        r,
		templates:     ts,
		logger:        logger.With("system", "app"),
		maxUploadSize: cfg.MaxUploadSizeBytes(),
	}

	mux := web.NewRouter()
	mux.Handle("GET /public/", http.FileServerFS(publicFS))
	mux.HandleFunc("GET /api/routes", h.handleRoutes)
	mux.HandleFunc("GET /api/resolve", h.handleResolve)
	mux.SetFallback(h.dispatch)
	h.mux = mux

	h.logger.Info("routes compiled", "count", len(r.Routes()), "history", r.Strategy())
	return h, nil
}

// Router returns the application's router.
func (h *Handler) Router() *router.Router {
	return h.router
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.EscapedPath()
	if path == "" {
		path = "/"
	}

	// Without browser history the client keeps its location in the
	// fragment or in memory, so the server only ever sees the document root.
	if !h.router.ServesDeepLinks() && path != "/" {
		h.notFound(w, r)
		return
	}

	m, err := h.router.Resolve(path)
	if err != nil {
		if !errors.Is(err, routes.ErrNotFound) {
			h.logger.Error("resolve failed", "path", path, "error", err)
		}
		h.notFound(w, r)
		return
	}

	h.render(w, m)
}

func (h *Handler) render(w http.ResponseWriter, m routes.Match) {
	def, ok := h.templates.Lookup(m.Route.View)
	if !ok {
		h.logger.Error("view not registered", "view", m.Route.View)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data, err := h.viewModel(m)
	if err != nil {
		h.logger.Error("build view model failed", "view", m.Route.View, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	title := def.Title
	switch m.Route.View {
	case ViewCity:
		title = m.Params.Get("name")
	case ViewUpload:
		title = def.Title + " · " + m.Params.Get("city")
	}

	vd := web.ViewData{Title: title, Params: m.Params, Data: data}
	if err := h.templates.Render(w, layout, def.Template, vd); err != nil {
		h.logger.Error("render failed", "view", m.Route.View, "error", err)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("no route", "path", r.URL.Path)
	h.templates.ErrorHandler(layout, notFoundView, http.StatusNotFound)(w, r)
}

type cityLink struct {
	Name       string
	Href       string
	UploadHref string
}

type homeModel struct {
	Cities []cityLink
}

type cityModel struct {
	Name       string
	UploadHref string
	HomeHref   string
}

type uploadModel struct {
	City          string
	CityHref      string
	MaxUploadSize string
	MaxBytes      int64
}

func (h *Handler) viewModel(m routes.Match) (any, error) {
	switch m.Route.View {
	case ViewHome:
		links := make([]cityLink, 0, len(featuredCities))
		for _, name := range featuredCities {
			city, err := h.router.HrefFor(ViewCity, routes.Params{"name": name})
			if err != nil {
				return nil, err
			}
			upload, err := h.router.HrefFor(ViewUpload, routes.Params{"city": name})
			if err != nil {
				return nil, err
			}
			links = append(links, cityLink{Name: name, Href: city, UploadHref: upload})
		}
		return homeModel{Cities: links}, nil

	case ViewCity:
		name := m.Params.Get("name")
		upload, err := h.router.HrefFor(ViewUpload, routes.Params{"city": name})
		if err != nil {
			return nil, err
		}
		home, err := h.router.HrefFor(ViewHome, nil)
		if err != nil {
			return nil, err
		}
		return cityModel{Name: name, UploadHref: upload, HomeHref: home}, nil

	case ViewUpload:
		city := m.Params.Get("city")
		href, err := h.router.HrefFor(ViewCity, routes.Params{"name": city})
		if err != nil {
			return nil, err
		}
		return uploadModel{
			City:          city,
			CityHref:      href,
			MaxUploadSize: units.HumanSize(float64(h.maxUploadSize)),
			MaxBytes:      h.maxUploadSize,
		}, nil
	}

	return nil, fmt.Errorf("no view model for %q", m.Route.View)
}
