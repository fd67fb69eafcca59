package models

import "encoding/json"

// ErrorResponse is the uniform error body returned by the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`

	// Code carries a machine-readable marker for failures the client must
	// distinguish, e.g. "WORD_NOT_RECOGNIZED" on HTTP 422.
	Code string `json:"code,omitempty"`
}

// EnrichResponse is the success body of POST /api/enrich.
type EnrichResponse struct {
	Success bool `json:"success"`

	// Translation is surfaced separately when the caller asked for one,
	// so the client can fill its form field without digging into AIData.
	Translation string `json:"translation,omitempty"`

	// AIData is the generated payload exactly as parsed from the model.
	AIData json.RawMessage `json:"aiData"`

	// Resolved is the shape-resolved view of AIData.
	Resolved Enrichment `json:"resolved,omitempty"`
}

// CreateEntryResponse is returned by POST /api/entries.
//
// EnrichmentSaved is false in the partial-failure state where the entry was
// inserted but the save of the generated payload failed; the entry exists
// without its enrichment and the caller is told so instead of the state
// being silently discarded.
type CreateEntryResponse struct {
	Entry           Entry  `json:"entry"`
	EnrichmentSaved bool   `json:"enrichment_saved"`
	Warning         string `json:"warning,omitempty"`
}

// RandomEntryResponse is returned by GET /api/entries/random. Slug is empty
// when the owner has fewer than two entries of the requested kind.
type RandomEntryResponse struct {
	Slug string `json:"slug"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// PracticeCard is one element of a practice deck.
type PracticeCard struct {
	Slug   string `json:"slug"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`

	// Choices is populated for the article game only.
	Choices []string `json:"choices,omitempty"`
}

// PracticeDeck is a shuffled, fixed-size subsample of the user's entries.
// Game results are never persisted; score keeping is a client concern.
type PracticeDeck struct {
	Game  string         `json:"game"`
	Cards []PracticeCard `json:"cards"`

	// SecondsPerCard is set for the timed recall game.
	SecondsPerCard int `json:"seconds_per_card,omitempty"`
}
