package mobile

import (
	"errors"
	"log"
	"net/http"

	"draughts/internal/server/game"
	httpserver "draughts/internal/server/http"
	"draughts/internal/strategy"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	srv, err := newServer(webDir, port)
	if err != nil {
		log.Printf("[mobile] %v", err)
		return
	}

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[mobile] server error: %v", err)
		}
	}()
}

func newServer(webDir string, port string) (*http.Server, error) {
	h, err := httpserver.NewHandler(game.NewManager(), strategy.Random)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:    "127.0.0.1:" + port,
		Handler: httpserver.NewRouter(h, webDir),
	}, nil
}
