package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-vitals-keeper/internal/risk"
)

// Defaults applied by validate for fields that may legitimately be omitted.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-vitals-keeper"
	defaultTokenDuration  = 12 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling in defaults
// for optional fields.
//
// Required: a non-empty database DSN, a non-empty token sign key, and a
// recognised risk policy name (empty selects the default policy).
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	policy, err := risk.ParsePolicy(cfg.App.RiskPolicy)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	cfg.App.RiskPolicy = string(policy)

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return nil
}
