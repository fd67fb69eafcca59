package enrich

import (
	"fmt"
	"strings"

	"github.com/asalimova/word-inventory/models"
)

// systemPrompt pins the model to machine-readable output. The
// word_recognized convention gives the model a structured way to refuse
// garbage input instead of inventing an explanation for it.
const systemPrompt = `You are a language-learning assistant. Always answer with a single JSON object and nothing else: no prose, no markdown fences. If the submitted text is not a recognizable word or phrase of the target language, answer exactly {"word_recognized": false}.`

// buildPrompt assembles the user message for one enrichment request. Every
// enabled option becomes exactly one key the model is told to emit, so the
// stored payload never contains fields nobody asked for.
func buildPrompt(req models.EnrichRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The word or phrase is %q in %s.\n", req.WordText, req.LanguageName)
	if req.NativeLanguage != "" {
		fmt.Fprintf(&b, "The learner's native language is %s; phrase translations toward it.\n", req.NativeLanguage)
	}
	if req.Options.Level != "" {
		fmt.Fprintf(&b, "Calibrate explanations and examples to CEFR level %s.\n", req.Options.Level)
	}

	b.WriteString("Return a JSON object with exactly these keys:\n")

	if req.Options.Translation {
		b.WriteString(`- "translation": a concise translation as a string` + "\n")
	}
	if req.Options.Grammar {
		b.WriteString(`- "grammar": grammatical information; use a nested object for conjugation or declension tables (outer keys tense or case, inner keys person or number), a flat object for simple tables, a string otherwise` + "\n")
	}
	if req.Options.Examples > 0 {
		fmt.Fprintf(&b, "- \"examples\": an array of exactly %d example sentences as strings\n", req.Options.Examples)
	}
	if req.Options.Difficulty {
		b.WriteString(`- "difficulty": the CEFR band of this word as a string ("A1".."C2")` + "\n")
	}
	if req.Options.Synonyms {
		b.WriteString(`- "synonyms": an array of synonyms as strings` + "\n")
	}
	if req.Options.Mnemonic {
		b.WriteString(`- "mnemonic": a short memorable association as a string` + "\n")
	}
	if req.Options.Phrases {
		b.WriteString(`- "phrases": an array of common phrases or collocations as strings` + "\n")
	}
	if req.Options.Etymology {
		b.WriteString(`- "etymology": a brief word history as a string` + "\n")
	}
	if req.Options.GenderVerbForms {
		b.WriteString(`- "gender_verb_forms": grammatical gender with article, or principal verb forms; use a flat object or a string` + "\n")
	}

	b.WriteString("Do not include any other keys.")

	return b.String()
}
