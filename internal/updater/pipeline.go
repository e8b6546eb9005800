// Package updater fills the pitch-accent field of every card in a Mochi
// deck with diagrams rendered from the accent dictionary. It resolves
// the deck and its template fields by name, renders each card's word and
// dispatches the field updates concurrently.
package updater

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kotonoha-dev/pitchcard/internal/adapter/mochi"
	"github.com/kotonoha-dev/pitchcard/internal/pitch"
	"github.com/kotonoha-dev/pitchcard/pkg/ctxutil"
)

// CardAPI is the slice of the Mochi client the pipeline needs.
type CardAPI interface {
	ListDecks(ctx context.Context) ([]mochi.Deck, error)
	ListTemplates(ctx context.Context) ([]mochi.Template, error)
	ListCards(ctx context.Context, deckID string) ([]mochi.Card, error)
	UpdateCard(ctx context.Context, cardID string, fields map[string]mochi.CardField) (*mochi.Card, error)
}

// Config selects the deck and fields to update.
type Config struct {
	Deck        string // deck name
	WordField   string // template field holding the word
	PitchField  string // template field receiving the diagram
	Concurrency int    // max in-flight card updates
	DryRun      bool   // render without posting
}

// Result holds per-run statistics.
type Result struct {
	Total   int // cards seen
	Updated int // cards posted (or would-be posts in dry-run)
	Skipped int // pitch field already holds the rendered markup
	Empty   int // word missing or not in the dictionary
	Failed  int // update requests that errored
}

// cardStatus is the outcome of processing one card.
type cardStatus int

const (
	statusUpdated cardStatus = iota
	statusSkipped
	statusEmpty
	statusFailed
)

// Pipeline runs one bulk update.
type Pipeline struct {
	log  *slog.Logger
	api  CardAPI
	dict *pitch.Dictionary
	cfg  Config

	mu     sync.Mutex
	result Result
}

// New creates a Pipeline.
func New(logger *slog.Logger, api CardAPI, dict *pitch.Dictionary, cfg Config) *Pipeline {
	return &Pipeline{
		log:  logger.With("component", "updater"),
		api:  api,
		dict: dict,
		cfg:  cfg,
	}
}

// Run lists the configured deck's cards and updates their pitch field.
// Per-card failures are aggregated into the Result rather than aborting
// the run; Run itself fails only when the deck, template, or card list
// cannot be fetched.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	log := p.log.With(slog.String("run_id", runID.String()))

	deck, err := p.findDeck(ctx)
	if err != nil {
		return Result{}, err
	}

	wordFieldID, pitchFieldID, err := p.resolveFields(ctx, deck)
	if err != nil {
		return Result{}, err
	}

	cards, err := p.api.ListCards(ctx, deck.ID)
	if err != nil {
		return Result{}, fmt.Errorf("list cards of deck %q: %w", deck.Name, err)
	}

	log.Info("deck loaded",
		slog.String("deck", deck.Name),
		slog.Int("cards", len(cards)),
		slog.Bool("dry_run", p.cfg.DryRun),
	)

	p.mu.Lock()
	p.result = Result{Total: len(cards)}
	p.mu.Unlock()

	g := new(errgroup.Group)
	g.SetLimit(p.cfg.Concurrency)
	for _, card := range cards {
		card := card
		g.Go(func() error {
			status := p.processCard(ctx, log, card, wordFieldID, pitchFieldID)
			p.record(status)
			return nil
		})
	}
	// Workers never return errors; failures are counted in the result.
	_ = g.Wait()

	p.mu.Lock()
	result := p.result
	p.mu.Unlock()

	log.Info("run finished",
		slog.Int("total", result.Total),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("empty", result.Empty),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

// HasErrors reports whether the last run left failed cards behind.
func (p *Pipeline) HasErrors() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result.Failed > 0
}

// findDeck resolves the configured deck name to a deck.
func (p *Pipeline) findDeck(ctx context.Context) (mochi.Deck, error) {
	decks, err := p.api.ListDecks(ctx)
	if err != nil {
		return mochi.Deck{}, fmt.Errorf("list decks: %w", err)
	}
	for _, d := range decks {
		if d.Name == p.cfg.Deck {
			return d, nil
		}
	}
	return mochi.Deck{}, fmt.Errorf("deck %q not found", p.cfg.Deck)
}

// resolveFields maps the configured field names onto the field IDs of
// the deck's template.
func (p *Pipeline) resolveFields(ctx context.Context, deck mochi.Deck) (wordFieldID, pitchFieldID string, err error) {
	if deck.TemplateID == "" {
		return "", "", fmt.Errorf("deck %q has no template", deck.Name)
	}

	templates, err := p.api.ListTemplates(ctx)
	if err != nil {
		return "", "", fmt.Errorf("list templates: %w", err)
	}

	var tmpl *mochi.Template
	for i := range templates {
		if templates[i].ID == deck.TemplateID {
			tmpl = &templates[i]
			break
		}
	}
	if tmpl == nil {
		return "", "", fmt.Errorf("template %s of deck %q not found", deck.TemplateID, deck.Name)
	}

	for _, f := range tmpl.Fields {
		switch f.Name {
		case p.cfg.WordField:
			wordFieldID = f.ID
		case p.cfg.PitchField:
			pitchFieldID = f.ID
		}
	}
	if wordFieldID == "" {
		return "", "", fmt.Errorf("template %q has no field named %q", tmpl.Name, p.cfg.WordField)
	}
	if pitchFieldID == "" {
		return "", "", fmt.Errorf("template %q has no field named %q", tmpl.Name, p.cfg.PitchField)
	}
	return wordFieldID, pitchFieldID, nil
}

// processCard renders and, unless skipped, posts one card's pitch field.
func (p *Pipeline) processCard(ctx context.Context, log *slog.Logger, card mochi.Card, wordFieldID, pitchFieldID string) cardStatus {
	word := strings.TrimSpace(card.Fields[wordFieldID].Value)
	if word == "" {
		log.Debug("card has no word", slog.String("card_id", card.ID))
		return statusEmpty
	}
	if len(p.dict.Lookup(word)) == 0 {
		log.Debug("word not in accent dictionary",
			slog.String("card_id", card.ID), slog.String("word", word))
		return statusEmpty
	}

	markup := pitch.Render(word, p.dict)
	if card.Fields[pitchFieldID].Value == markup {
		return statusSkipped
	}

	if p.cfg.DryRun {
		log.Info("would update card",
			slog.String("card_id", card.ID), slog.String("word", word))
		return statusUpdated
	}

	_, err := p.api.UpdateCard(ctx, card.ID, map[string]mochi.CardField{
		pitchFieldID: {ID: pitchFieldID, Value: markup},
	})
	if err != nil {
		log.Error("update card",
			slog.String("card_id", card.ID),
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return statusFailed
	}
	return statusUpdated
}

// record counts one card outcome.
func (p *Pipeline) record(status cardStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch status {
	case statusUpdated:
		p.result.Updated++
	case statusSkipped:
		p.result.Skipped++
	case statusEmpty:
		p.result.Empty++
	case statusFailed:
		p.result.Failed++
	}
}
