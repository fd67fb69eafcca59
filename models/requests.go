package models

// EnrichRequest is the body of POST /api/enrich.
//
// WordText and LanguageName are required. NativeLanguage is optional and,
// when present, is used to phrase translations toward the user's own
// language. The authenticated user always wins over the optional UserID
// field, which exists only for wire compatibility.
type EnrichRequest struct {
	WordText       string        `json:"wordText"`
	LanguageName   string        `json:"languageName"`
	Options        EnrichOptions `json:"options"`
	NativeLanguage string        `json:"nativeLanguage,omitempty"`
	UserID         int64         `json:"userId,omitempty"`
}

// CreateEntryRequest is the body of POST /api/entries.
//
// When Enrich is non-nil the entry is created through the enrichment flow:
// generation happens first and the insert only occurs after it succeeds.
type CreateEntryRequest struct {
	Kind       EntryKind   `json:"kind"`
	LanguageID *int64      `json:"language_id,omitempty"`
	EntryFields
	Enrich *EnrichOptions `json:"enrich,omitempty"`
}

// UpdateEntryRequest is the body of PUT /api/entries/{id}: a full-field
// replace of the mutable entry fields.
type UpdateEntryRequest struct {
	EntryFields
}
