// Package cache holds the in-process listing cache. Entry listings are the
// hottest read path of the API and are cheap to rebuild, so they live in a
// TTL-bounded go-cache instance keyed by owner, filter and sort order, and
// are dropped wholesale for an owner whenever one of their writes succeeds.
package cache

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/asalimova/word-inventory/models"
)

// ListingCache caches entry listings per owner. Invalidation happens only
// after a write has succeeded; a failed write leaves the cache untouched.
type ListingCache struct {
	store *gocache.Cache
}

// NewListingCache constructs a cache whose items expire after ttl.
func NewListingCache(ttl time.Duration) *ListingCache {
	return &ListingCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Key derives the cache key for one listing request. The owner id leads the
// key so [ListingCache.InvalidateOwner] can match by prefix.
func Key(userID int64, filter models.EntryFilter, sort models.SortOrder) string {
	language := "-"
	if filter.LanguageID != nil {
		language = strconv.FormatInt(*filter.LanguageID, 10)
	}
	return fmt.Sprintf("entries:%d:%s:%s:%s", userID, filter.Kind, language, sort)
}

// Get returns the cached listing for key, if present and not expired.
func (c *ListingCache) Get(key string) ([]models.Entry, bool) {
	value, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	entries, ok := value.([]models.Entry)
	return entries, ok
}

// Set stores a listing under key with the default TTL.
func (c *ListingCache) Set(key string, entries []models.Entry) {
	c.store.SetDefault(key, entries)
}

// InvalidateOwner drops every cached listing belonging to userID. Other
// owners' listings are unaffected.
func (c *ListingCache) InvalidateOwner(userID int64) {
	prefix := fmt.Sprintf("entries:%d:", userID)
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}
