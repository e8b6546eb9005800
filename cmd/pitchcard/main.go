// Command pitchcard renders pitch-accent diagrams for every card in a
// Mochi deck and writes them into the card's pitch field.
//
// Flags:
//
//	--deck     deck name to update (overrides config)
//	--dry-run  render without posting updates
//
// Configuration comes from config.yaml and environment variables;
// MOCHI_KEY is required. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kotonoha-dev/pitchcard/internal/app"
)

func main() {
	deckFlag := flag.String("deck", "", "deck name to update (overrides config)")
	dryRunFlag := flag.Bool("dry-run", false, "render diagrams without posting updates")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{Deck: *deckFlag, DryRun: *dryRunFlag}); err != nil {
		log.Fatalf("pitchcard: %v", err)
	}
}
