// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-web-server/internal/cookies"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Cookie.Name == "" || !cookies.IsValidSameSite(cfg.Cookie.SameSite) || cfg.Cookie.RefreshWindow < 0 {
		return ErrInvalidCookieConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.StaticDir == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
