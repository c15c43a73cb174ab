// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "zero refresh window is valid", mutate: func(c *StructuredConfig) { c.Cookie.RefreshWindow = 0 }},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "non-positive token duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing cookie name", mutate: func(c *StructuredConfig) { c.Cookie.Name = "" }, wantErr: ErrInvalidCookieConfigs},
		{name: "unknown same site", mutate: func(c *StructuredConfig) { c.Cookie.SameSite = "sometimes" }, wantErr: ErrInvalidCookieConfigs},
		{name: "negative refresh window", mutate: func(c *StructuredConfig) { c.Cookie.RefreshWindow = -1 }, wantErr: ErrInvalidCookieConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "missing static dir", mutate: func(c *StructuredConfig) { c.Server.StaticDir = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
