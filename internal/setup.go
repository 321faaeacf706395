package internal

import (
	"fmt"
	"log/slog"
	"os"

	pkgconfig "github.com/sorenh/postkeep/pkg/config"
)

// Setup loads configuration and installs the default logger. Report output
// goes to stdout; all logging goes to stderr so the two can be piped apart.
func Setup(configPath string) (*Config, *slog.Logger, error) {
	cfg := NewDefaultConfig()
	if err := pkgconfig.LoadIfPresent(configPath, cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}
