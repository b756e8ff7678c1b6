package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter 挂载 API、websocket 与静态资源；webDir 为空时不提供静态文件
func NewRouter(h *Handler, webDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", h.handlePing)
	r.Post("/api/new_game", h.handleNewGame)
	r.Post("/api/play", h.handlePlay)
	r.Post("/api/state", h.handleState)
	r.Post("/api/ai_move", h.handleAiMove)
	r.Get("/ws/{id}", h.serveWS)

	if webDir != "" {
		RegisterStaticRoutes(r, webDir)
	}
	return r
}
