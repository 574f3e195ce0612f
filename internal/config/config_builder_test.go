package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "from-first"},
			Storage: Storage{DB: DB{DSN: "first.db"}},
		},
		&StructuredConfig{
			Auth:   Auth{TokenSignKey: "from-second", TokenIssuer: "issuer-second"},
			Server: Server{HTTPAddress: "localhost:9000"},
		},
	)
	b.configs = append(b.configs, defaultConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-first", cfg.Auth.TokenSignKey)
	assert.Equal(t, "issuer-second", cfg.Auth.TokenIssuer)
	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

// TestBuild_AppliesDefaults verifies that withDefaults fills fields left
// empty by higher-priority sources.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "vault.db"}},
	})
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultAccessTokenDuration, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, DefaultRefreshTokenDuration, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultFirstSuperuserEmail, cfg.Auth.FirstSuperuserEmail)
}

// TestBuild_ValidationFailure verifies that an incomplete merged config is
// rejected by validation.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{}) // no DSN, no sign key

	cfg, err := b.build()
	_ = cfg
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergedBelowEnv verifies that a JSON config referenced by an
// earlier source is loaded and merged with lower priority.
func TestWithJSON_MergedBelowEnv(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"token_sign_key":        "json-secret",
			"access_token_duration": "45m",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "json.db"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth:         Auth{TokenSignKey: "env-secret"},
		JSONFilePath: jsonPath,
	})
	b = b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	// env value wins, json fills the gaps
	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
}

// TestWithJSON_MissingFile verifies that a dangling JSON path surfaces as a
// build error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b = b.withJSON()

	_, err := b.build()
	require.Error(t, err)
}
