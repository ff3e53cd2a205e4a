package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "json-sign-key",
			"token_issuer": "bookmark-keeper",
			"token_duration": "12h"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/bookmarks"},
			"cache": {"path": "cache.db"}
		},
		"server": {
			"http_address": "localhost:9090",
			"request_timeout": "45s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/bookmarks", cfg.Storage.DB.DSN)
	assert.Equal(t, "cache.db", cfg.Storage.Cache.Path)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"app": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
