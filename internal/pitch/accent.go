package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

// AccentKind names one of the four canonical Japanese pitch-accent
// patterns.
type AccentKind string

const (
	// Heiban starts low and stays high with no fall.
	Heiban AccentKind = "HEIBAN"
	// Atamadaka starts high and falls after the first mora.
	Atamadaka AccentKind = "ATAMADAKA"
	// Nakadaka rises after the first mora and falls mid-word.
	Nakadaka AccentKind = "NAKADAKA"
	// Odaka stays high through the word and falls on the following
	// particle.
	Odaka AccentKind = "ODAKA"
)

func (k AccentKind) String() string { return string(k) }

func (k AccentKind) IsValid() bool {
	switch k {
	case Heiban, Atamadaka, Nakadaka, Odaka:
		return true
	}
	return false
}

// Accent is one pitch-accent pattern. Drop is meaningful only for
// Nakadaka: the 0-based mora index at which pitch falls, always strictly
// between 1 and the reading's mora count.
type Accent struct {
	Kind AccentKind
	Drop int
}

// Entry pairs an accent pattern with the optional free-text annotation
// carried by its dictionary code (typically a part-of-speech marker).
type Entry struct {
	Accent Accent
	Note   string
}

// classify maps a raw accent index onto a canonical pattern. moraCount is
// the mora count of the row's reading, never of the written word. The
// index-1 rule is checked before the Odaka rule, so a one-mora word with
// index 1 classifies as Atamadaka.
func classify(index, moraCount int) (Accent, error) {
	switch {
	case index == 0:
		return Accent{Kind: Heiban}, nil
	case index == 1:
		return Accent{Kind: Atamadaka}, nil
	case index == moraCount:
		return Accent{Kind: Odaka}, nil
	case index > 1 && index < moraCount:
		return Accent{Kind: Nakadaka, Drop: index}, nil
	default:
		return Accent{}, fmt.Errorf("accent index %d out of range for %d morae", index, moraCount)
	}
}

// parseCode splits one raw accent code into its annotation and numeric
// index. A code is a run of digits plus an optional parenthesized
// annotation, in either order: "2", "(副)1", "0(名)". The first
// parenthesized run becomes the note, the first digit run outside
// parentheses becomes the index.
func parseCode(code string) (note string, index int, err error) {
	var noteBuf, digitBuf strings.Builder
	inParen := false
	noteDone := false
	digitsDone := false

	for _, r := range code {
		switch {
		case r == '(' && !noteDone && !inParen:
			inParen = true
		case r == ')' && inParen:
			inParen = false
			noteDone = true
		case inParen:
			noteBuf.WriteRune(r)
		case r >= '0' && r <= '9' && !digitsDone:
			digitBuf.WriteRune(r)
		case digitBuf.Len() > 0:
			digitsDone = true
		}
	}

	if digitBuf.Len() == 0 {
		return "", 0, fmt.Errorf("code %q carries no accent index", code)
	}
	index, err = strconv.Atoi(digitBuf.String())
	if err != nil {
		return "", 0, fmt.Errorf("code %q: %w", code, err)
	}
	return noteBuf.String(), index, nil
}
