package pitch

import "strings"

// Mochi renders card fields without stylesheet support, so every border
// is declared inline and the strings below must stay byte-stable.
const (
	styleTop    = "BORDER-TOP: #FF6633 medium solid;"
	styleBottom = "BORDER-BOTTOM: #FF6633 medium solid;"
	styleLeft   = "BORDER-LEFT: #FF6633 medium solid;"

	wrapperOpen  = `<div style="text-align: center">`
	wrapperClose = `</div>`

	// trailingMark stands in for the grammatical particle following the
	// word; it gets the extra edge position computed by Edges.
	trailingMark = "…"

	// entrySep joins accent patterns of one row, rowSep joins rows of a
	// homograph.
	entrySep = "・"
	rowSep   = `<div style="line-height:100%;"><br></div>`
)

// Render produces the pitch-accent diagram markup for word. Every
// dictionary row of the word is rendered in source order, every accent
// pattern within a row in code order. An unknown word renders as the
// empty wrapper; Render never fails.
func Render(word string, dict *Dictionary) string {
	var b strings.Builder
	b.WriteString(wrapperOpen)
	for ri, row := range dict.Lookup(word) {
		if ri > 0 {
			b.WriteString(rowSep)
		}
		for ei, entry := range row.Entries {
			if ei > 0 {
				b.WriteString(entrySep)
			}
			renderEntry(&b, row.Reading, entry)
		}
	}
	b.WriteString(wrapperClose)
	return b.String()
}

// renderEntry writes one accent pattern: an optional bold note label
// followed by one bordered span per mora plus the particle mark.
func renderEntry(b *strings.Builder, reading string, entry Entry) {
	if entry.Note != "" {
		b.WriteString(`<span style="font-weight: bold;">`)
		b.WriteString(entry.Note)
		b.WriteString(": ")
		b.WriteString(`</span>`)
	}

	// The trailing mark is appended before segmenting so the glyph list
	// lines up with the n+1 edge positions.
	morae := Segment(reading + trailingMark)
	edges := Edges(reading, entry.Accent)

	for i, mora := range morae {
		b.WriteString(`<span style="`)
		if edges[i].Has(EdgeTop) {
			b.WriteString(styleTop)
		}
		if edges[i].Has(EdgeBottom) {
			b.WriteString(styleBottom)
		}
		if edges[i].Has(EdgeLeft) {
			b.WriteString(styleLeft)
		}
		b.WriteString(`">`)
		b.WriteString(mora)
		b.WriteString(`</span>`)
	}
}
