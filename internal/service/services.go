package service

import (
	"github.com/asalimova/word-inventory/internal/cache"
	"github.com/asalimova/word-inventory/internal/config"
	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/internal/utils"
)

// Services bundles all business-logic services behind one constructor so
// the transport layer depends on a single value.
type Services struct {
	AuthService        AuthService
	LanguageService    LanguageService
	EntryService       EntryService
	TagMetadataService TagMetadataService
	ProfileService     ProfileService
	PracticeService    PracticeService
}

// NewServices wires every service to the given storages, enrichment
// generator and configuration.
func NewServices(storages *store.Storages, generator EnrichmentGenerator, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	listings := cache.NewListingCache(cfg.Storage.ListingCacheTTL)

	return &Services{
		AuthService:     NewAuthService(storages.Users, cfg.App, logger),
		LanguageService: NewLanguageService(storages.Languages, logger),
		EntryService: NewEntryService(
			storages.Entries,
			storages.Languages,
			storages.Profiles,
			generator,
			utils.NewUUIDGenerator(),
			listings,
			logger,
		),
		TagMetadataService: NewTagMetadataService(storages.TagMetadata, logger),
		ProfileService:     NewProfileService(storages.Profiles, logger),
		PracticeService:    NewPracticeService(storages.Entries, logger),
	}
}
