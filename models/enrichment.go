package models

import (
	"encoding/json"
	"sort"
)

// CEFRLevel is a Common European Framework band used to calibrate the
// difficulty of generated explanations.
type CEFRLevel string

const (
	CEFRA1 CEFRLevel = "A1"
	CEFRA2 CEFRLevel = "A2"
	CEFRB1 CEFRLevel = "B1"
	CEFRB2 CEFRLevel = "B2"
	CEFRC1 CEFRLevel = "C1"
	CEFRC2 CEFRLevel = "C2"
)

// Valid reports whether l is one of the six CEFR bands.
func (l CEFRLevel) Valid() bool {
	switch l {
	case CEFRA1, CEFRA2, CEFRB1, CEFRB2, CEFRC1, CEFRC2:
		return true
	}
	return false
}

// EnrichOptions selects which fields the hosted model is asked to produce.
// Each enabled flag becomes exactly one key of the JSON object the model is
// instructed to return.
type EnrichOptions struct {
	Grammar    bool      `json:"grammar,omitempty"`
	Examples   int       `json:"examples,omitempty"`
	Level      CEFRLevel `json:"level,omitempty"`
	Difficulty bool      `json:"difficulty,omitempty"`
	Synonyms   bool      `json:"synonyms,omitempty"`

	// Extended flags offered by the richer dialog.
	Mnemonic        bool `json:"mnemonic,omitempty"`
	Phrases         bool `json:"phrases,omitempty"`
	Etymology       bool `json:"etymology,omitempty"`
	Translation     bool `json:"translation,omitempty"`
	GenderVerbForms bool `json:"gender_verb_forms,omitempty"`
}

// FieldKind tags the resolved shape of one enrichment payload field.
type FieldKind string

const (
	// FieldText is a plain string (explanation, mnemonic, gender).
	FieldText FieldKind = "text"
	// FieldList is a flat string array (example sentences, synonyms).
	FieldList FieldKind = "list"
	// FieldTable is a flat key/value map (a simple grammar table).
	FieldTable FieldKind = "table"
	// FieldGrid is a two-level map: verb conjugation (tense -> person ->
	// form) or noun declension (case -> number -> form).
	FieldGrid FieldKind = "grid"
	// FieldRaw is anything that matched none of the known shapes; kept
	// verbatim for defensive rendering downstream.
	FieldRaw FieldKind = "raw"
)

// EnrichmentField is one field of a resolved enrichment payload: a tagged
// union over the shapes the model is known to produce. Exactly one of the
// value members is populated, indicated by Kind.
type EnrichmentField struct {
	Kind  FieldKind                    `json:"kind"`
	Text  string                       `json:"text,omitempty"`
	List  []string                     `json:"list,omitempty"`
	Table map[string]string            `json:"table,omitempty"`
	Grid  map[string]map[string]string `json:"grid,omitempty"`
	Raw   json.RawMessage              `json:"raw,omitempty"`
}

// Enrichment is the shape-resolved view of an AI payload, keyed by the
// requested field names (grammar, examples, synonyms, ...).
type Enrichment map[string]EnrichmentField

// Keys returns the payload field names in a stable order.
func (e Enrichment) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ResolveEnrichment parses raw as a JSON object and resolves every field to
// one of the known payload shapes, once, at the boundary where the payload
// is received. Fields that match no known shape are retained verbatim as
// [FieldRaw] — arbitrary nesting is tolerated, not rejected.
//
// Returns an error only when raw is not a JSON object at the top level.
func ResolveEnrichment(raw json.RawMessage) (Enrichment, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, err
	}

	resolved := make(Enrichment, len(object))
	for key, value := range object {
		resolved[key] = resolveField(value)
	}

	return resolved, nil
}

func resolveField(value json.RawMessage) EnrichmentField {
	var text string
	if err := json.Unmarshal(value, &text); err == nil {
		return EnrichmentField{Kind: FieldText, Text: text}
	}

	var list []string
	if err := json.Unmarshal(value, &list); err == nil {
		return EnrichmentField{Kind: FieldList, List: list}
	}

	// Try the deeper shape first: a flat map[string]string would also
	// accept "{}" but a grid must win for nested objects.
	var grid map[string]map[string]string
	if err := json.Unmarshal(value, &grid); err == nil && len(grid) > 0 {
		return EnrichmentField{Kind: FieldGrid, Grid: grid}
	}

	var table map[string]string
	if err := json.Unmarshal(value, &table); err == nil {
		return EnrichmentField{Kind: FieldTable, Table: table}
	}

	return EnrichmentField{Kind: FieldRaw, Raw: value}
}
