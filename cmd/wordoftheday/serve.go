package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wordoftheday/internal/assets"
	"github.com/at-ishikawa/wordoftheday/internal/bootstrap"
	"github.com/at-ishikawa/wordoftheday/internal/metrics"
	"github.com/at-ishikawa/wordoftheday/internal/refresh"
	"github.com/at-ishikawa/wordoftheday/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the word of the day page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	if cfg.Wordnik.APIKey == "" {
		slog.Default().Warn("WORDNIK_API_KEY is not set; only a cached word can be shown")
	}

	resolver, closeResolver, err := newResolver(cfg)
	if err != nil {
		return fmt.Errorf("newResolver() > %w", err)
	}
	app.AddShutdownHook(closeResolver)

	indexTemplate, err := assets.ParseIndexTemplate(cfg.Templates.IndexTemplate)
	if err != nil {
		return fmt.Errorf("assets.ParseIndexTemplate() > %w", err)
	}
	errorTemplate, err := assets.ParseErrorTemplate(cfg.Templates.ErrorTemplate)
	if err != nil {
		return fmt.Errorf("assets.ParseErrorTemplate() > %w", err)
	}

	m, err := metrics.New(metrics.Options{})
	if err != nil {
		return fmt.Errorf("metrics.New() > %w", err)
	}

	if cfg.Refresh.Enabled {
		refresher := refresh.New(resolver, cfg.Refresh.Schedule)
		if err := refresher.Start(); err != nil {
			return fmt.Errorf("refresher.Start() > %w", err)
		}
		app.AddShutdownHook(refresher.Stop)
	}

	handler := server.NewPageHandler(resolver, indexTemplate, errorTemplate,
		server.WithMetrics(m),
		server.WithBaseURL(cfg.Server.BaseURL),
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler.Routes(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}
