// Command barrk opens a window with a single button that barks.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/phanxgames/barrk/internal/app"
	"github.com/phanxgames/barrk/internal/cli"
	"github.com/phanxgames/barrk/internal/config"
	"github.com/phanxgames/barrk/scene"
)

func main() {
	if err := cli.NewRootCmd(run, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "barrk:", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, opts cli.Options, log zerolog.Logger) error {
	appOpts := app.Options{ExitAfterScript: opts.ExitAfterScript}
	if opts.Script != "" {
		runner, err := scene.LoadTestScriptFile(opts.Script)
		if err != nil {
			return err
		}
		appOpts.Script = runner
		log.Info().Str("script", opts.Script).Msg("test script loaded")
	}
	g, err := app.New(cfg, appOpts, log)
	if err != nil {
		return err
	}
	return app.Run(g)
}
