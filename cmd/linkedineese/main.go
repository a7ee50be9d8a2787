package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HussainAbbasDev/linkedineese/internal/adapter"
	"github.com/HussainAbbasDev/linkedineese/internal/config"
	"github.com/HussainAbbasDev/linkedineese/internal/metrics"
	"github.com/HussainAbbasDev/linkedineese/internal/provider"
	"github.com/HussainAbbasDev/linkedineese/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	envFile := flag.String("env-file", ".env", "dotenv file to load before reading the environment")
	useMock := flag.Bool("mock", false, "use mock adapter instead of a real provider")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := config.LoadEnvFile(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fatal("env file", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("config", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	providers := provider.Resolve(cfg)
	for _, p := range providers {
		v := 0.0
		if p.HasCredential() {
			v = 1
		}
		metrics.ProviderConfigured.WithLabelValues(p.Name).Set(v)
	}

	a, models := buildAdapter(cfg, *useMock)
	handler := server.SetupMux(a, providers, models, cfg.MaxBodyBytes)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("linkedineese listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server", err)
		}
	}()

	<-done
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fatal("shutdown", err)
	}
	slog.Info("server stopped")
}

func buildAdapter(cfg config.Config, useMock bool) (adapter.LLMAdapter, []adapter.ModelInfo) {
	if useMock {
		slog.Info("mode: mock adapter enabled")
		return &adapter.MockAdapter{Delay: 500 * time.Millisecond},
			[]adapter.ModelInfo{{ID: "mock", Name: "Mock (dev)", Provider: "mock"}}
	}

	sel := provider.Select(cfg)
	if sel.HasCredential() {
		slog.Info("provider selected", "provider", sel.Name, "model", sel.Model, "base_url", sel.BaseURL)
	} else {
		slog.Warn("no provider API key configured; transform requests will fail", "provider", sel.Name)
	}

	// No client timeout: a slow provider is bounded only by the caller.
	chat := adapter.NewChatAdapter(sel, &http.Client{})
	return chat, []adapter.ModelInfo{{
		ID:       sel.Model,
		Name:     sel.Name + " (" + sel.Model + ")",
		Provider: sel.Name,
	}}
}

func fatal(what string, err error) {
	slog.Error(what, "error", err)
	os.Exit(1)
}
