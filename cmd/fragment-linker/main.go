// Package main provides the CLI entrypoint for fragment-linker.
//
// fragment-linker is a schema-driven GraphQL codegen linker that:
//   - Registers every fragment across the document set with the generated
//     symbol names it will export
//   - Plans the minimal cross-file import statements each output file needs
//   - Emits per-file manifests of external fragment references
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fragment-linker/internal/config"
	"fragment-linker/internal/linker"
)

func newLogger(debug bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)

	return zap.New(core)
}

func runLink(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadFile(cmd.String("config"))
	if err != nil {
		return err
	}

	if out := cmd.String("out"); out != "" {
		cfg.BaseOutputDir = out
	}

	if cmd.Bool("strict") {
		cfg.Strict = true
	}

	log := newLogger(cmd.Bool("debug"))
	defer func() { _ = log.Sync() }()

	l := linker.New(cfg, log)

	result, err := l.Run()
	if err != nil {
		return err
	}

	if cmd.Bool("debug") {
		for _, name := range result.Registry.Names() {
			entry, _ := result.Registry.Lookup(name)
			fmt.Fprintf(os.Stderr, "=== fragment %s ===\n%s", name, spew.Sdump(entry))
		}
	}

	if err := l.Write(result); err != nil {
		return err
	}

	log.Info("done", zap.Int("files", len(result.Files)))

	return nil
}

func main() {
	app := &cli.Command{
		Name:            "fragment-linker",
		Usage:           "cross-file fragment import planner for GraphQL codegen",
		HideHelpCommand: true,
		Commands: []*cli.Command{
			{
				Name:   "link",
				Usage:  "Build the fragment registry and emit per-file import manifests",
				Action: runLink,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "linker.yaml", Usage: "load configuration from `FILE` (YAML)"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "override the configured base output `DIR`"},
					&cli.BoolFlag{Name: "strict", Usage: "treat dangling fragment spreads as errors"},
					&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose logging plus a dump of the fragment registry"},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
