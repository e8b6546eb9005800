package mochi

// Wire types for the Mochi API. JSON keys follow the API's kebab-case
// naming.

// Deck is a collection of cards.
type Deck struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ParentID   string `json:"parent-id,omitempty"`
	TemplateID string `json:"template-id,omitempty"`
}

// TemplateField describes one field slot of a template.
type TemplateField struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Pos     string         `json:"pos"`
	Options map[string]any `json:"options,omitempty"`
}

// Template is a card layout; its fields are keyed by field ID.
type Template struct {
	ID      string                   `json:"id"`
	Name    string                   `json:"name"`
	Content string                   `json:"content"`
	Fields  map[string]TemplateField `json:"fields,omitempty"`
}

// CardField is one filled-in field value of a card, keyed by the
// template field's ID.
type CardField struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Card is a single flashcard.
type Card struct {
	ID         string               `json:"id"`
	Content    string               `json:"content"`
	DeckID     string               `json:"deck-id"`
	Tags       []string             `json:"tags,omitempty"`
	References []string             `json:"references,omitempty"`
	TemplateID string               `json:"template-id,omitempty"`
	Fields     map[string]CardField `json:"fields,omitempty"`
}

// page is the envelope of every listing endpoint: a batch of documents
// plus a bookmark cursor pointing at the next page.
type page[T any] struct {
	Bookmark string `json:"bookmark"`
	Docs     []T    `json:"docs"`
}

// updateCardRequest is the body of a card update; only the listed fields
// change.
type updateCardRequest struct {
	Fields map[string]CardField `json:"fields"`
}
