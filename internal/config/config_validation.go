// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server needs at startup: a database to connect to, a key to
// sign tokens with, and a non-zero token lifetime.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.CachePath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
