// Package ui serves a small web playground for the markup parser.
package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dhamidi/htx/format"
	"github.com/dhamidi/htx/html/parser"
)

//go:embed templates
var embeddedFS embed.FS

type Server struct {
	templates *template.Template
	mux       *http.ServeMux
}

func NewServer() (*Server, error) {
	tmpl, err := template.ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type playgroundData struct {
	Input string
	Tree  string
	Error string
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", playgroundData{})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}
	input := r.FormValue("input")

	node, err := parser.Parse(input)

	if r.Header.Get("Accept") == "application/json" {
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		format.NewJSONEncoder(w).Encode(node)
		return
	}

	data := playgroundData{Input: input}
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Tree = format.Tree(node)
	}
	s.render(w, "index.html", data)
}
