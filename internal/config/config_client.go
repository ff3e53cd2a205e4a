package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the bookmark server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// CachePath is the SQLite file used for the local session and
	// bookmark cache.
	CachePath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via env, flags, and the optional JSON file, maps
// only the fields relevant to the client runtime (applying client defaults
// where the shared config leaves values empty), and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	base, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		buildWithoutValidation()
	if err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    base.Adapter.HTTPAddress,
			RequestTimeout: base.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CachePath: base.Storage.Cache.Path,
		},
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.CachePath == "" {
		cfg.Storage.CachePath = "bookmarks-cache.db"
	}

	return cfg, cfg.validate()
}

// buildWithoutValidation merges all collected sources but skips the
// server-oriented validation; the client view applies its own rules.
func (b *configBuilder) buildWithoutValidation() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergeInto(config, cfg); err != nil {
			return nil, err
		}
	}

	return config, nil
}
