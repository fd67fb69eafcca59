package models

import (
	"encoding/json"
	"time"
)

// EntryKind distinguishes the two vocabulary entry variants that share one
// table shape: words tied to a target language, and native-phrase
// translations without a language reference.
type EntryKind string

const (
	EntryKindWord        EntryKind = "word"
	EntryKindTranslation EntryKind = "translation"
)

// Valid reports whether k is one of the two known entry kinds.
func (k EntryKind) Valid() bool {
	return k == EntryKindWord || k == EntryKindTranslation
}

// SortOrder is a fixed listing order persisted as a per-user preference.
type SortOrder string

const (
	SortDateDesc  SortOrder = "date_desc"
	SortDateAsc   SortOrder = "date_asc"
	SortAlphaAsc  SortOrder = "alpha_asc"
	SortAlphaDesc SortOrder = "alpha_desc"
)

// Valid reports whether s is one of the four recognized sort orders.
func (s SortOrder) Valid() bool {
	switch s {
	case SortDateDesc, SortDateAsc, SortAlphaAsc, SortAlphaDesc:
		return true
	}
	return false
}

// Entry is a vocabulary record owned by a user.
//
// Word entries carry a LanguageID; translation entries leave it nil.
// Tags are denormalized as a plain name list — deleting an entry cascades
// to nothing. Enrichment holds the opaque AI-generated payload as stored;
// see [ResolveEnrichment] for the shape-resolved view.
type Entry struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	// Slug is a stable random identifier used for "next random word"
	// navigation, so that database IDs are not exposed in URLs.
	Slug string `json:"slug"`

	Kind       EntryKind `json:"kind"`
	LanguageID *int64    `json:"language_id,omitempty"`

	// Text is the source text: the foreign word for word entries, the
	// native phrase for translation entries. Non-empty after trimming.
	Text string `json:"text"`

	// Translation is the counterpart text. Non-empty after trimming.
	Translation string `json:"translation"`

	Notes    string `json:"notes,omitempty"`
	Color    string `json:"color,omitempty"`
	ImageURL string `json:"image_url,omitempty"`

	// Enrichment is the AI-generated payload exactly as persisted,
	// arbitrary nested JSON. Nil when the entry was never enriched.
	Enrichment json.RawMessage `json:"enrichment,omitempty"`

	// Tags is the list of tag names attached to this entry. Tag metadata
	// (icon, color class) lives separately and may not exist for a name.
	Tags []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// EntryFields is the mutable subset of an entry used by the full-field
// replace update operation.
type EntryFields struct {
	Text        string   `json:"text"`
	Translation string   `json:"translation"`
	Notes       string   `json:"notes"`
	Color       string   `json:"color"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

// EntryFilter narrows a listing. A nil LanguageID means no language filter.
type EntryFilter struct {
	Kind       EntryKind
	LanguageID *int64
}
