// Package command holds helpers shared by the cobra subcommands.
package command

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/saqib40/kit-and-adapter/internal/app"
	"github.com/saqib40/kit-and-adapter/internal/config"
)

// SetupLogger applies LOG_LEVEL and LOG_PRETTY to the global logger.
func SetupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// WithApp loads the config, builds the app and runs f against it. The app is
// closed once f returns.
func WithApp(ctx context.Context, f func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	// .env may carry LOG_LEVEL and LOG_PRETTY
	SetupLogger(cfg)

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close app")
		}
	}()

	return f(ctx, a)
}
