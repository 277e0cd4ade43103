// Package web renders server-side views from pre-parsed templates.
// Templates are parsed once at startup so a missing or malformed template
// fails construction rather than a request.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef binds a view name to its template file and page title.
type ViewDef struct {
	Name     string
	Template string
	Title    string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	BasePath string
	Params   map[string]string
	Data     any
}

// TemplateSet holds one parsed template tree per view, each cloned from
// the shared layouts.
type TemplateSet struct {
	views    map[string]*template.Template
	defs     map[string]ViewDef
	basePath string
}

// NewTemplateSet parses the layouts matched by layoutGlob and clones them
// for each view template found under viewSubdir.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		views:    make(map[string]*template.Template, len(views)),
		defs:     make(map[string]ViewDef, len(views)),
		basePath: basePath,
	}

	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		ts.views[v.Template] = t
		ts.defs[v.Name] = v
	}

	return ts, nil
}

// Lookup returns the definition registered under name.
func (ts *TemplateSet) Lookup(name string) (ViewDef, bool) {
	v, ok := ts.defs[name]
	return v, ok
}

// ErrorHandler returns an HTTP handler that renders view with the given status code.
// If the page fails to render, a plain-text body is sent with the same status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := ts.views[view.Template]
		if !ok {
			http.Error(w, http.StatusText(status), status)
			return
		}
		var buf bytes.Buffer
		if err := t.ExecuteTemplate(&buf, layout, ViewData{Title: view.Title, BasePath: ts.basePath}); err != nil {
			http.Error(w, http.StatusText(status), status)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		buf.WriteTo(w)
	}
}

// ViewHandler returns an HTTP handler that renders view with fixed data.
func (ts *TemplateSet) ViewHandler(layout string, view ViewDef, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vd := ViewData{Title: view.Title, BasePath: ts.basePath, Data: data}
		if err := ts.Render(w, layout, view.Template, vd); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout template for the view template.
// It sets the Content-Type header to text/html.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, viewPath string, data ViewData) error {
	t, ok := ts.views[viewPath]
	if !ok {
		return fmt.Errorf("template not found: %s", viewPath)
	}
	if data.BasePath == "" {
		data.BasePath = ts.basePath
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, layoutName, data)
}
