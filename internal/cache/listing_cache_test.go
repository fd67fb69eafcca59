package cache

import (
	"testing"
	"time"

	"github.com/asalimova/word-inventory/models"
)

func TestKey_DistinguishesRequests(t *testing.T) {
	languageID := int64(3)

	base := Key(1, models.EntryFilter{Kind: models.EntryKindWord}, models.SortDateDesc)
	differentSort := Key(1, models.EntryFilter{Kind: models.EntryKindWord}, models.SortAlphaAsc)
	differentOwner := Key(2, models.EntryFilter{Kind: models.EntryKindWord}, models.SortDateDesc)
	withLanguage := Key(1, models.EntryFilter{Kind: models.EntryKindWord, LanguageID: &languageID}, models.SortDateDesc)

	keys := map[string]bool{base: true, differentSort: true, differentOwner: true, withLanguage: true}
	if len(keys) != 4 {
		t.Errorf("expected 4 distinct keys, got %d", len(keys))
	}
}

func TestListingCache_SetGet(t *testing.T) {
	c := NewListingCache(time.Minute)
	key := Key(1, models.EntryFilter{Kind: models.EntryKindWord}, models.SortDateDesc)

	if _, ok := c.Get(key); ok {
		t.Fatal("expected empty cache miss")
	}

	c.Set(key, []models.Entry{{ID: 1, Text: "Hund"}})

	entries, ok := c.Get(key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(entries) != 1 || entries[0].Text != "Hund" {
		t.Errorf("unexpected cached entries: %v", entries)
	}
}

func TestListingCache_InvalidateOwnerIsScoped(t *testing.T) {
	c := NewListingCache(time.Minute)

	mineWords := Key(1, models.EntryFilter{Kind: models.EntryKindWord}, models.SortDateDesc)
	mineTranslations := Key(1, models.EntryFilter{Kind: models.EntryKindTranslation}, models.SortDateDesc)
	theirs := Key(2, models.EntryFilter{Kind: models.EntryKindWord}, models.SortDateDesc)

	c.Set(mineWords, []models.Entry{})
	c.Set(mineTranslations, []models.Entry{})
	c.Set(theirs, []models.Entry{})

	c.InvalidateOwner(1)

	if _, ok := c.Get(mineWords); ok {
		t.Error("expected owner's word listing to be invalidated")
	}
	if _, ok := c.Get(mineTranslations); ok {
		t.Error("expected owner's translation listing to be invalidated")
	}
	if _, ok := c.Get(theirs); !ok {
		t.Error("expected other owner's listing to survive")
	}
}
