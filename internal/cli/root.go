// Package cli wires the barrk command line onto the config and the app.
package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/barrk/internal/config"
	"github.com/phanxgames/barrk/internal/logging"
)

// Options are the command-line settings that are not part of Config.
type Options struct {
	ConfigPath      string
	Script          string
	ExitAfterScript bool
}

// RunFunc starts the app with the merged configuration.
type RunFunc func(cfg config.Config, opts Options, log zerolog.Logger) error

// NewRootCmd constructs the barrk command. Flags override values from the
// config file; logs go to logOut.
func NewRootCmd(run RunFunc, logOut io.Writer) *cobra.Command {
	var opts Options
	defaults := config.Default()

	root := &cobra.Command{
		Use:           "barrk",
		Short:         "A window with a button that barks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Config file (.toml, .yaml, .yml, .json)")
	flags.String("log-level", defaults.LogLevel, "Log level: debug|info|warn|error|off")
	flags.Bool("inspector", defaults.Inspector, "Show the inspector overlay at startup (toggle with F1)")
	flags.Bool("diagnostics", defaults.Diagnostics, "Log frame-time diagnostics")
	flags.Uint64("seed", defaults.Seed, "Random seed for bark selection (0 = random)")
	flags.StringVar(&opts.Script, "script", "", "Test script (.json, .yaml) to drive input and screenshots")
	flags.BoolVar(&opts.ExitAfterScript, "exit-after-script", false, "Exit when the test script finishes")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg := defaults
		if opts.ConfigPath != "" {
			var err error
			if cfg, err = config.Load(opts.ConfigPath); err != nil {
				return err
			}
		}
		if err := applyFlags(cmd, &cfg); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		log, err := logging.New(logOut, cfg.LogLevel)
		if err != nil {
			return err
		}
		if opts.ExitAfterScript && opts.Script == "" {
			return fmt.Errorf("--exit-after-script requires --script")
		}
		return run(cfg, opts, log)
	}
	return root
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	if flags.Changed("inspector") {
		if cfg.Inspector, err = flags.GetBool("inspector"); err != nil {
			return err
		}
	}
	if flags.Changed("diagnostics") {
		if cfg.Diagnostics, err = flags.GetBool("diagnostics"); err != nil {
			return err
		}
	}
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
			return err
		}
	}
	return nil
}
