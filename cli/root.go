// Package cli is the penscape command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/watzon/penscape/studio"
	"github.com/watzon/penscape/studio/config"
)

type rootFlags struct {
	configPath string
	libraryDir string
	logLevel   string
	jsonOutput bool
}

// app is what a command needs once flags are resolved.
type app struct {
	config *config.Config
	log    *zap.Logger
	studio *studio.Studio
}

// open resolves configuration from file, environment and flags in that order
// and builds the studio.
func (f *rootFlags) open() (*app, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if f.libraryDir != "" {
		cfg.WithLibraryDir(f.libraryDir)
	}
	if f.logLevel != "" {
		cfg.WithLogLevel(f.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := cfg.Logging.Prepare()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	st, err := studio.New(cfg, log)
	if err != nil {
		return nil, err
	}
	return &app{config: cfg, log: log, studio: st}, nil
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "penscape",
		Short:         "PenScape turns markdown into inline-styled HTML with generated themes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "penscape.yaml", "Path to the YAML config file")
	cmd.PersistentFlags().StringVar(&flags.libraryDir, "library", "", "Theme library directory (overrides config)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newSwatchCmd(flags))
	cmd.AddCommand(newServeCmd(flags))

	return cmd
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}
