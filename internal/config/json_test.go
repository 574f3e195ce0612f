// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_FullConfig verifies that all sections of a JSON config file
// are mapped onto the structured config.
func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"version":      "9.9.9",
			"cors_origins": []string{"http://localhost:3000"},
		},
		"auth": map[string]any{
			"token_sign_key":           "json-secret",
			"token_issuer":             "json-issuer",
			"access_token_duration":    "20m",
			"refresh_token_duration":   "96h",
			"first_superuser_email":    "seed@example.com",
			"first_superuser_password": "seedpw",
		},
		"storage": map[string]any{
			"db": map[string]any{
				"driver": "sqlite3",
				"dsn":    "local.db",
			},
		},
		"server": map[string]any{
			"http_address":    "0.0.0.0:8088",
			"request_timeout": "25s",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.CORSOrigins)
	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 20*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 96*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, "seed@example.com", cfg.Auth.FirstSuperuserEmail)
	assert.Equal(t, "seedpw", cfg.Auth.FirstSuperuserPassword)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8088", cfg.Server.HTTPAddress)
	assert.Equal(t, 25*time.Second, cfg.Server.RequestTimeout)
}

// TestParseJSON_MissingFile verifies the error path for a non-existent file.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	require.Error(t, err)
}

// TestDuration_UnmarshalJSON covers both accepted representations.
func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, Duration(90*time.Minute), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`60000000000`)))
	assert.Equal(t, Duration(time.Minute), d)

	require.Error(t, d.UnmarshalJSON([]byte(`"not a duration"`)))
	require.Error(t, d.UnmarshalJSON([]byte(`true`)))
}

// TestValidate_DriverDerivation verifies driver inference from the DSN.
func TestValidate_DriverDerivation(t *testing.T) {
	cfg := &StructuredConfig{
		Auth: Auth{
			TokenSignKey:         "secret",
			AccessTokenDuration:  time.Minute,
			RefreshTokenDuration: time.Hour,
		},
		Server:  Server{HTTPAddress: ":8080"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/items"}},
	}
	require.NoError(t, cfg.validate())
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)

	cfg.Storage.DB.Driver = ""
	cfg.Storage.DB.DSN = "itemvault.db"
	require.NoError(t, cfg.validate())
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

// TestValidate_Failures enumerates the rejection paths.
func TestValidate_Failures(t *testing.T) {
	base := func() *StructuredConfig {
		return &StructuredConfig{
			Auth: Auth{
				TokenSignKey:         "secret",
				AccessTokenDuration:  time.Minute,
				RefreshTokenDuration: time.Hour,
			},
			Server:  Server{HTTPAddress: ":8080"},
			Storage: Storage{DB: DB{DSN: "vault.db"}},
		}
	}

	cfg := base()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = base()
	cfg.Storage.DB.Driver = "oracle"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = base()
	cfg.Auth.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)

	cfg = base()
	cfg.Auth.AccessTokenDuration = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)

	cfg = base()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
