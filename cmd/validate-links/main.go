package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/sorenh/postkeep/internal"
	"github.com/sorenh/postkeep/internal/linkcheck"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, _, err := internal.Setup(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.NArg() != 1 {
		return fmt.Errorf("usage: validate-links <path-to-markdown-file>")
	}
	path := cmd.Args().First()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	urls := linkcheck.FilterDomain(linkcheck.ExtractURLs(string(data)), cfg.Links.Domain)
	if len(urls) == 0 {
		fmt.Printf("%s: no links found\n", path)
		return nil
	}

	checker := linkcheck.NewChecker(cfg.Links.Timeout, cfg.Links.UserAgent, cfg.Links.Concurrency)
	results := checker.Check(ctx, urls)

	broken := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Printf("BROKEN %s (%v)\n", r.URL, r.Err)
			broken++
		case r.Broken():
			fmt.Printf("BROKEN %s (%d)\n", r.URL, r.Status)
			broken++
		default:
			fmt.Printf("ok     %s (%d)\n", r.URL, r.Status)
		}
	}

	// Unlike the unused-image checker, broken links are a hard gate.
	if broken > 0 {
		return fmt.Errorf("%d broken links in %s", broken, path)
	}
	fmt.Printf("%d links ok in %s\n", len(urls), path)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "validate-links",
		Usage:     "Check every http(s) link in a markdown file and fail if any is broken",
		ArgsUsage: "<path-to-markdown-file>",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("validate-links error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
