package pitch

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrBadRow wraps every dictionary parse failure. The accent table is
// trusted static reference data, so a malformed row aborts the whole
// load; the process must never run on a partial dictionary.
var ErrBadRow = errors.New("malformed accent row")

//go:embed data/accents.tsv
var accentsTSV string

// WordAccents is one dictionary row: a kana reading plus every accent
// pattern listed for it, in source order.
type WordAccents struct {
	Reading string
	Entries []Entry
}

// Dictionary maps a written word to its rows. A word may appear on
// several rows (homographs and alternate readings); row order follows
// the source. The dictionary is immutable once built and safe to share
// across goroutines without locking.
type Dictionary struct {
	rows map[string][]WordAccents
}

// Load builds the dictionary from the embedded accent table.
func Load() (*Dictionary, error) {
	return Parse(strings.NewReader(accentsTSV))
}

// Parse reads an accent table: one row per line, three tab-separated
// fields `word<TAB>reading<TAB>code[,code]*`. An empty reading field
// falls back to the word itself. Blank lines are allowed.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{rows: make(map[string][]WordAccents)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrBadRow, lineNo, line, err)
		}
		d.rows[word] = append(d.rows[word], row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read accent table: %w", err)
	}

	return d, nil
}

// parseRow parses one table line into its word key and WordAccents row.
func parseRow(line string) (string, WordAccents, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return "", WordAccents{}, fmt.Errorf("want 3 tab-separated fields, got %d", len(fields))
	}

	word := fields[0]
	reading := fields[1]
	if reading == "" {
		reading = word
	}
	moraCount := MoraCount(reading)

	codes := strings.Split(fields[2], ",")
	entries := make([]Entry, 0, len(codes))
	for _, code := range codes {
		note, index, err := parseCode(strings.TrimSpace(code))
		if err != nil {
			return "", WordAccents{}, err
		}
		accent, err := classify(index, moraCount)
		if err != nil {
			return "", WordAccents{}, fmt.Errorf("reading %q: %w", reading, err)
		}
		entries = append(entries, Entry{Accent: accent, Note: note})
	}

	return word, WordAccents{Reading: reading, Entries: entries}, nil
}

// Lookup returns every row stored for word, in source order, or nil for
// an unknown word. Callers must not modify the returned slice.
func (d *Dictionary) Lookup(word string) []WordAccents {
	return d.rows[word]
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.rows)
}

// Words returns every distinct word in the dictionary, sorted. Used by
// offline tooling that walks the whole table.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.rows))
	for w := range d.rows {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
