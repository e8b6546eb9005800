package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kotonoha-dev/pitchcard/internal/adapter/mochi"
	"github.com/kotonoha-dev/pitchcard/internal/config"
	"github.com/kotonoha-dev/pitchcard/internal/pitch"
	"github.com/kotonoha-dev/pitchcard/internal/updater"
)

// Options are CLI flag overrides applied on top of the loaded config.
type Options struct {
	Deck   string
	DryRun bool
}

// Run is the application entry point: load configuration, build the
// accent dictionary, and bulk-update the configured Mochi deck.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if opts.Deck != "" {
		cfg.Update.Deck = opts.Deck
	}
	if opts.DryRun {
		cfg.Update.DryRun = true
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting pitchcard",
		slog.String("version", BuildVersion()),
		slog.String("deck", cfg.Update.Deck),
		slog.Bool("dry_run", cfg.Update.DryRun),
	)

	dict, err := pitch.Load()
	if err != nil {
		return fmt.Errorf("load accent dictionary: %w", err)
	}
	logger.Info("accent dictionary loaded", slog.Int("words", dict.Len()))

	client := mochi.NewClientWithURL(cfg.Mochi.BaseURL, cfg.Mochi.APIKey, logger)

	pipeline := updater.New(logger, client, dict, updater.Config{
		Deck:        cfg.Update.Deck,
		WordField:   cfg.Update.WordField,
		PitchField:  cfg.Update.PitchField,
		Concurrency: cfg.Update.Concurrency,
		DryRun:      cfg.Update.DryRun,
	})

	result, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d cards failed to update", result.Failed, result.Total)
	}
	return nil
}
