// Package main provides the Lumexa HTTP server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/optivex/lumexa-go/internal/config"
	"github.com/optivex/lumexa-go/internal/llm"
	"github.com/optivex/lumexa-go/internal/memory"
	"github.com/optivex/lumexa-go/internal/metrics"
	"github.com/optivex/lumexa-go/internal/search"
	"github.com/optivex/lumexa-go/internal/server"
	"github.com/optivex/lumexa-go/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mc := metrics.NewCollector()

	// A missing provider credential must not keep the server down: search
	// and PDF endpoints work without a model, chat reports not configured.
	model, err := llm.NewGenerator(ctx, cfg, mc)
	if err != nil {
		logger.Warn("LLM provider unavailable, generation endpoints disabled",
			"provider", string(cfg.LLMProvider), "error", err)
		model = nil
	} else {
		logger.Info("LLM provider ready", "provider", string(cfg.LLMProvider), "model", model.Model())
	}

	searcher := search.NewClient(cfg, mc)
	store := memory.NewStore(cfg.HistoryLimit)

	chat := service.NewChatService(model, store, cfg.HistoryLimit, logger)
	webSearch := service.NewWebSearchService(searcher, model, mc, logger)
	pdf := service.NewPDFService(searcher, mc, logger)

	srv := server.New(cfg, chat, webSearch, pdf, mc, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
