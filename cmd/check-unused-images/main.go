package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/sorenh/postkeep/internal"
	"github.com/sorenh/postkeep/internal/assets"
	"github.com/sorenh/postkeep/internal/extract"
	"github.com/sorenh/postkeep/internal/reconcile"
	"github.com/sorenh/postkeep/internal/report"
	"github.com/sorenh/postkeep/internal/watch"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := internal.Setup(cmd.String("config"))
	if err != nil {
		return err
	}
	if root := cmd.String("root"); root != "" {
		cfg.Content.Root = root
	}
	if mode := cmd.String("extractor"); mode != "" {
		cfg.Content.Extractor = mode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	exts := assets.NewExtensionSet(cfg.Content.ImageExtensions)
	matchers := extract.ForMode(cfg.Content.Extractor)

	check := func() error {
		results, err := reconcile.Scan(cfg.Content.Root, exts, matchers, logger)
		if err != nil {
			return err
		}
		report.Render(os.Stdout, results)
		return nil
	}

	// The first pass is the only one allowed to fail the run: a missing
	// content root is a setup problem, not a finding. Findings themselves
	// never change the exit code; this checker is advisory.
	if err := check(); err != nil {
		return err
	}

	if !cmd.Bool("watch") {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watch.Run(ctx, cfg.Content.Root, logger, func() {
		if err := check(); err != nil {
			logger.Error("check failed", slog.String("error", err.Error()))
		}
	})
}

func main() {
	cmd := &cli.Command{
		Name:   "check-unused-images",
		Usage:  "Report images that posts no longer reference, and references with no image on disk",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "Content root to scan (overrides config)",
			},
			&cli.StringFlag{
				Name:  "extractor",
				Usage: "Reference extractor: regex or ast",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Keep running and re-check whenever the content tree changes",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("check-unused-images error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
