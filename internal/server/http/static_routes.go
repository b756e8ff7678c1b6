package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterStaticRoutes mounts:
// - /web/* -> board UI assets
// - /      -> redirect to /web/
func RegisterStaticRoutes(r chi.Router, webDir string) {
	if r == nil {
		return
	}
	if webDir == "" {
		webDir = "."
	}

	r.Handle("/web/*", http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))
	r.Get("/web", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/web/", http.StatusFound)
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/web/", http.StatusFound)
	})
}
