package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/antigravity-ai/guidance/internal/config"
	"github.com/antigravity-ai/guidance/internal/llm"

	httphandler "github.com/antigravity-ai/guidance/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel)
	slog.Info("Initialized Groq client", "base_url", cfg.GroqBaseURL, "model", llmClient.Model())

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(llmClient)

	// Create router
	r := httphandler.NewRouter(handler, cfg.CORSOrigins)

	// Create HTTP server
	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
