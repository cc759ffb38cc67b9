// ABOUTME: The tui subcommand runs the playground in the terminal with Bubble Tea.
// ABOUTME: Logging is off unless --log-file is given, since the alt screen owns stdout and stderr.
package main

import (
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/2389-research/storybook-ui/catalog"
	"github.com/2389-research/storybook-ui/config"
	"github.com/2389-research/storybook-ui/playground"
	"github.com/2389-research/storybook-ui/tui"
)

type tuiOptions struct {
	path        string
	catalogPath string
	logFile     string
}

func newTUICmd(root *rootOptions) *cobra.Command {
	opts := &tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the component playground in the terminal",
		Long: `Opens the playground in the terminal. --path mounts a component and
story the same way the path query value does on the web, e.g.
--path /card/with-form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("catalog") {
				cfg.CatalogPath = opts.catalogPath
			}

			logger := zap.NewNop()
			if opts.logFile != "" {
				if logger, err = newLogger(cfg.LogLevel, root.verbose, opts.logFile); err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
			}

			src, err := openCatalog(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.WatchCatalog && cfg.CatalogPath != "" {
				w, err := catalog.NewWatcher(src, cfg.CatalogPath, logger)
				if err != nil {
					return err
				}
				if err := w.Start(ctx); err != nil {
					_ = w.Stop()
					return err
				}
				defer func() { _ = w.Stop() }()
			}

			model := newTUIModel(src, opts.path, logger)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running terminal playground: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "component and story to open, e.g. /button/secondary")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file (default: embedded catalog)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	return cmd
}

// newTUIModel mounts a view at path over the source's current catalog.
func newTUIModel(src *catalog.Source, path string, logger *zap.Logger) tui.AppModel {
	state := playground.Mount(src.Current(), path)
	logger.Debug("terminal view mounted",
		zap.String("view", state.ViewID),
		zap.String("component", string(state.Component)),
		zap.String("story", state.Story),
	)
	return tui.NewAppModel(state, src, logger)
}
