package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"techflow-console/internal/config"
	"techflow-console/internal/middleware"
	"techflow-console/internal/observability"
	"techflow-console/internal/server"
	"techflow-console/internal/services/ai"
	"techflow-console/internal/services/charts"
	"techflow-console/internal/services/chat"
	"techflow-console/internal/store"
	"techflow-console/internal/ui/templates"
)

const (
	renderTimeout   = 10 * time.Second
	dataLoadTimeout = 30 * time.Second
	cacheMaxAge     = "public, max-age=300"
)

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	w.Header().Set("Cache-Control", cacheMaxAge)
	if err := templates.Dashboard().Render(ctx, w); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"addr", cfg.Address(),
	)

	dataStore := store.New(logger)
	ctx, cancel := context.WithTimeout(context.Background(), dataLoadTimeout)
	defer cancel()

	if err := dataStore.Load(ctx, cfg.Data.Dir); err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}

	// Missing credential is not an error: the analyzer answers offline with
	// the rule-based fallback.
	var completer ai.Completer
	if cfg.AI.APIKey != "" {
		completer = ai.NewClient(ai.ClientConfig{
			BaseURL:     cfg.AI.BaseURL,
			APIKey:      cfg.AI.APIKey,
			Model:       cfg.AI.Model,
			MaxTokens:   cfg.AI.MaxTokens,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AI.Timeout,
		})
	} else {
		logger.Warn("no completion API key configured, chat uses rule-based analysis")
	}

	analyzer := ai.NewAnalyzer(completer, logger)
	selector := charts.NewSelector()
	chatManager := chat.NewManager(analyzer, selector, dataStore)

	templateHandlers := &server.TemplateHandlers{
		Dashboard: handleDashboard,
	}

	srv := server.NewServer(dataStore, chatManager, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down chat sessions", "count", chatManager.Count())
		return nil
	})

	logger.Info("starting graceful server")
	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
