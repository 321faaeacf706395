package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/sorenh/postkeep/internal"
	"github.com/sorenh/postkeep/internal/review"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := internal.Setup(cmd.String("config"))
	if err != nil {
		return err
	}
	if root := cmd.String("root"); root != "" {
		cfg.Content.Root = root
	}

	entries, err := review.Collect(cfg.Content.Root, logger)
	if err != nil {
		return err
	}

	if output := cmd.String("output"); output != "" {
		var buf bytes.Buffer
		review.RenderTable(&buf, entries)
		if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		logger.Info("review table written",
			slog.String("output", output),
			slog.Int("posts", len(entries)))
		return nil
	}

	review.RenderTable(os.Stdout, entries)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "review-table",
		Usage:  "Generate the post review-tracking table from frontmatter",
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
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the table to this file instead of stdout",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("review-table error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
