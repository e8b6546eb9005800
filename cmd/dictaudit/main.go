// Command dictaudit cross-checks the embedded accent table against the
// kagome morphological analyzer: for every word it compares the
// analyzer's katakana reading with the table's reading. It is an offline
// maintenance tool for the table, not part of the update flow.
//
// A mismatch is a hint, not proof of a bad row — long-vowel notation
// legitimately differs between sources (トウキョウ vs トーキョー), so
// reported rows need manual review.
//
// Flags:
//
//	--word    audit a single word instead of the whole table
//	--strict  exit 1 when any mismatch is found
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/kotonoha-dev/pitchcard/internal/pitch"
)

func main() {
	wordFlag := flag.String("word", "", "audit a single word")
	strictFlag := flag.Bool("strict", false, "exit non-zero on mismatches")
	flag.Parse()

	dict, err := pitch.Load()
	if err != nil {
		log.Fatalf("dictaudit: %v", err)
	}

	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		log.Fatalf("dictaudit: init tokenizer: %v", err)
	}

	words := dict.Words()
	if *wordFlag != "" {
		words = []string{*wordFlag}
	}

	var checked, mismatches int
	for _, word := range words {
		rows := dict.Lookup(word)
		if len(rows) == 0 {
			fmt.Printf("%s\tnot in the accent table\n", word)
			mismatches++
			continue
		}
		checked++

		got := analyzerReading(tok, word)
		agreed := false
		for _, row := range rows {
			if pitch.ToKatakana(row.Reading) == got {
				agreed = true
				break
			}
		}
		if !agreed {
			readings := make([]string, len(rows))
			for i, row := range rows {
				readings[i] = row.Reading
			}
			fmt.Printf("%s\ttable %s\tanalyzer %s\n", word, strings.Join(readings, "/"), got)
			mismatches++
		}
	}

	fmt.Printf("checked %d words, %d mismatches\n", checked, mismatches)
	if *strictFlag && mismatches > 0 {
		os.Exit(1)
	}
}

// analyzerReading concatenates the katakana reading of every token of
// word, falling back to the surface form when the analyzer has none
// (unknown words, bare katakana).
func analyzerReading(tok *tokenizer.Tokenizer, word string) string {
	var b strings.Builder
	for _, t := range tok.Tokenize(word) {
		if r, ok := t.Reading(); ok {
			b.WriteString(r)
		} else {
			b.WriteString(pitch.ToKatakana(t.Surface))
		}
	}
	return b.String()
}
