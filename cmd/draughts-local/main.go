package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"draughts/internal/config"
	"draughts/internal/draughts"
	"draughts/internal/server/game"
	httpserver "draughts/internal/server/http"
	"draughts/internal/strategy"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[server] %v", err)
	}
	addr := flag.String("addr", cfg.Addr, "listen address")
	webDir := flag.String("web", cfg.WebDir, "directory with index.html / js / svg")
	moveLimit := flag.Int("move-limit", cfg.MoveLimit, "quiet moves before a draw")
	strategyName := flag.String("strategy", cfg.Strategy, "default strategy for /api/ai_move")
	browser := flag.Bool("open", cfg.OpenBrowser, "open the default browser on start")
	flag.Parse()

	kind, err := strategy.Parse(*strategyName)
	if err != nil {
		log.Fatalf("[server] %v", err)
	}
	h, err := httpserver.NewHandler(game.NewManager(draughts.WithMoveLimit(*moveLimit)), kind)
	if err != nil {
		log.Fatalf("[server] %v", err)
	}

	server := &http.Server{
		Addr:    *addr,
		Handler: httpserver.NewRouter(h, *webDir),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()
	log.Printf("[server] listening on %s, serving static from %s, strategy %s", *addr, *webDir, kind)

	if *browser {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	select {
	case <-sigCtx.Done():
		log.Printf("[server] shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[server] server error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] graceful shutdown failed: %v", err)
	}
}
