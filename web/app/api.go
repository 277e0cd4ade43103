package app

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/city-lens/pkg/handlers"
	"github.com/JaimeStill/city-lens/pkg/history"
	"github.com/JaimeStill/city-lens/pkg/routes"
)

// TableResponse describes the route table for client bootstrap code.
type TableResponse struct {
	History history.Strategy `json:"history"`
	Routes  []RouteResponse  `json:"routes"`
}

// RouteResponse is one entry of the route table.
type RouteResponse struct {
	Pattern string `json:"pattern"`
	View    string `json:"view"`
}

// ResolveResponse is the result of resolving a path.
type ResolveResponse struct {
	Path   string        `json:"path"`
	View   string        `json:"view"`
	Params routes.Params `json:"params"`
	Href   string        `json:"href"`
}

func (h *Handler) handleRoutes(w http.ResponseWriter, r *http.Request) {
	table := h.router.Routes()
	resp := TableResponse{
		History: h.router.Strategy(),
		Routes:  make([]RouteResponse, len(table)),
	}
	for i, rt := range table {
		resp.Routes[i] = RouteResponse{Pattern: rt.Pattern, View: rt.View}
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// handleResolve resolves the escaped path given in the "path" query parameter.
func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("path query parameter required"))
		return
	}

	m, err := h.router.Resolve(path)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, routes.ErrNotFound) {
			status = http.StatusNotFound
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ResolveResponse{
		Path:   path,
		View:   m.Route.View,
		Params: m.Params,
		Href:   h.router.Href(path),
	})
}
