package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/sorenh/postkeep/internal"
	"github.com/sorenh/postkeep/internal/assets"
	"github.com/sorenh/postkeep/internal/extract"
	"github.com/sorenh/postkeep/internal/reconcile"
	"github.com/sorenh/postkeep/internal/remove"
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

	// Deletion scope is computed fresh here, against current disk and
	// current markdown, on every invocation. There is no cached plan to
	// replay; what this scan finds unused is exactly what may be deleted.
	results, err := reconcile.Scan(cfg.Content.Root, exts, matchers, logger)
	if err != nil {
		return err
	}

	remove.Run(os.Stdout, results, cmd.Bool("dry-run"), logger)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "remove-unused-images",
		Usage:  "Delete images that no post references; empty asset directories are removed too",
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
				Name:  "dry-run",
				Usage: "Print what would be deleted without touching the filesystem",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("remove-unused-images error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
