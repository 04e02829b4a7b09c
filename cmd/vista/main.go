package main

import (
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var version = "(devel)"

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	out := os.Stderr
	slog.SetDefault(slog.New(tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(out.Fd()),
	})))
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Panic", "err", err, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	var verbose bool
	verboseFlag := &cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "verbose output (includes debug)",
		Destination: &verbose,
	}

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	app := &cli.App{
		Name:                   "vista",
		Usage:                  "release feed explorer built on lazy sequence views",
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		Flags:                  []cli.Flag{verboseFlag},
		Before: func(_ *cli.Context) error {
			setupLogger(verbose)

			return nil
		},
		Commands: []*cli.Command{
			releasesCommand(),
			zipCommand(),
			chainCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}
