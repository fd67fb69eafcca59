// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alina Salimova

package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// applyDefaults fills in values that are safe to assume when no source
// provided them. Secrets and the DSN are deliberately left empty so that
// validation can reject an unconfigured server.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "word-inventory"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = 24 * time.Hour
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 60 * time.Second
	}
	if cfg.Storage.Engine == "" {
		cfg.Storage.Engine = EnginePostgres
	}
	if cfg.Storage.ListingCacheTTL == 0 {
		cfg.Storage.ListingCacheTTL = 5 * time.Minute
	}
	if cfg.Enrich.Model == "" {
		cfg.Enrich.Model = "gpt-4o-mini"
	}
	if cfg.Enrich.MaxTokens == 0 {
		cfg.Enrich.MaxTokens = 1024
	}
	if cfg.Enrich.Temperature == 0 {
		cfg.Enrich.Temperature = 0.2
	}
	if cfg.Enrich.Timeout == 0 {
		cfg.Enrich.Timeout = 30 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if cfg.Storage.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if cfg.Storage.Engine != EnginePostgres && cfg.Storage.Engine != EngineSQLite {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownStorageEngine, cfg.Storage.Engine))
	}

	return errors.Join(errs...)
}
