// ABOUTME: The serve subcommand: loads config, opens the catalog, optionally watches it, and runs the web server.
// ABOUTME: SIGINT and SIGTERM cancel the run context, which drains the server and stops the watcher.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/2389-research/storybook-ui/catalog"
	"github.com/2389-research/storybook-ui/config"
	"github.com/2389-research/storybook-ui/render"
	"github.com/2389-research/storybook-ui/web"
)

type serveOptions struct {
	addr        string
	catalogPath string
	watch       bool
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web playground server",
		Long: `Starts the HTTP server with the landing page at / and the component
playground at /storybook. Flags override storybook.yml and STORYBOOK_*
environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = opts.addr
			}
			if cmd.Flags().Changed("catalog") {
				cfg.CatalogPath = opts.catalogPath
			}
			if cmd.Flags().Changed("watch") {
				cfg.WatchCatalog = opts.watch
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			logger, err := newLogger(cfg.LogLevel, root.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", web.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file (default: embedded catalog)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload the catalog file when it changes")
	return cmd
}

// clearDocsOnReload returns a reload hook that drops cached docs fragments,
// since a reloaded catalog may carry different markdown.
func clearDocsOnReload(cache *render.Cache, logger *zap.Logger) func(*catalog.Catalog) {
	return func(c *catalog.Catalog) {
		n := cache.Len()
		cache.Clear()
		logger.Debug("render cache cleared after catalog reload",
			zap.Int("dropped", n),
			zap.Int("components", len(c.Components)),
		)
	}
}

// runServe runs the web server until ctx is cancelled.
func runServe(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	src, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	renderer := render.New(cfg.DocsCacheTTL)
	go renderer.Cache().PruneEvery(ctx, cfg.DocsCacheTTL, func(removed int) {
		hits, misses := renderer.Cache().Stats()
		logger.Debug("render cache pruned",
			zap.Int("removed", removed),
			zap.Uint64("hits", hits),
			zap.Uint64("misses", misses),
		)
	})

	if cfg.WatchCatalog {
		w, err := catalog.NewWatcher(src, cfg.CatalogPath, logger)
		if err != nil {
			return err
		}
		w.OnReload(clearDocsOnReload(renderer.Cache(), logger))
		if err := w.Start(ctx); err != nil {
			_ = w.Stop()
			return err
		}
		defer func() {
			if err := w.Stop(); err != nil {
				logger.Warn("stopping catalog watcher", zap.Error(err))
			}
		}()
	}

	srv, err := web.NewServer(web.ServerConfig{
		Addr:              cfg.Addr,
		SiteName:          cfg.SiteName,
		AllowedOrigins:    cfg.AllowedOrigins,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
		Catalog:           src,
		Renderer:          renderer,
		Logger:            logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("starting storybook",
		zap.String("addr", srv.Addr()),
		zap.String("catalog", src.Origin()),
		zap.String("version", version),
	)
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}
	logger.Info("storybook stopped")
	return nil
}
