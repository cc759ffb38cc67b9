// ABOUTME: Root cobra command with the persistent --config and --verbose flags shared by every subcommand.
// ABOUTME: Also builds the zap logger and opens the component catalog the subcommands run against.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/2389-research/storybook-ui/catalog"
	"github.com/2389-research/storybook-ui/config"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "storybook",
		Short: "Interactive component playground for a small UI library",
		Long: `storybook serves a landing page and a component playground where a
button, card or form can be previewed with live knobs: variant, size,
text and disabled. The same playground is available in the terminal.

Run "storybook serve" to start the web server.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", config.DefaultFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug logging)")

	cmd.AddCommand(
		newServeCmd(opts),
		newTUICmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// newLogger builds a production zap logger at the given level. verbose
// forces debug. When paths is non-empty, log output goes there instead of
// stderr.
func newLogger(level string, verbose bool, paths ...string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	if len(paths) > 0 {
		zcfg.OutputPaths = paths
		zcfg.ErrorOutputPaths = paths
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger, nil
}

// openCatalog returns a Source over the configured catalog file, or over
// the embedded catalog when no path is configured.
func openCatalog(cfg *config.Config) (*catalog.Source, error) {
	if cfg.CatalogPath == "" {
		return catalog.NewSource(catalog.Default(), catalog.EmbeddedOrigin), nil
	}
	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return catalog.NewSource(c, cfg.CatalogPath), nil
}
