package api

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"time"
)

// Renderer holds the parsed page templates. Pages are buffered before
// writing so a template error never leaks a half-rendered body.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer(dir string) (*Renderer, error) {
	funcs := template.FuncMap{
		"fmtdate": func(t time.Time) string { return t.Format("02-01-2006") },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
