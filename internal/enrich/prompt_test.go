package enrich

import (
	"strings"
	"testing"

	"github.com/asalimova/word-inventory/models"
)

func TestBuildPrompt_OnlyRequestedKeys(t *testing.T) {
	prompt := buildPrompt(models.EnrichRequest{
		WordText:     "der Hund",
		LanguageName: "German",
		Options: models.EnrichOptions{
			Translation: true,
			Examples:    3,
			Synonyms:    true,
		},
	})

	for _, want := range []string{`"translation"`, `"examples"`, `"synonyms"`, "exactly 3 example sentences"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %s", want)
		}
	}
	for _, absent := range []string{`"grammar"`, `"mnemonic"`, `"etymology"`, `"difficulty"`} {
		if strings.Contains(prompt, absent) {
			t.Errorf("expected prompt not to contain %s", absent)
		}
	}
}

func TestBuildPrompt_LevelAndNativeLanguage(t *testing.T) {
	prompt := buildPrompt(models.EnrichRequest{
		WordText:       "serendipity",
		LanguageName:   "English",
		NativeLanguage: "Russian",
		Options:        models.EnrichOptions{Level: models.CEFRB2, Translation: true},
	})

	if !strings.Contains(prompt, "CEFR level B2") {
		t.Error("expected prompt to mention the CEFR level")
	}
	if !strings.Contains(prompt, "Russian") {
		t.Error("expected prompt to mention the native language")
	}
}
