// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// When Storage.DB.Driver is empty, it is derived from the DSN: URLs with a
// postgres scheme select the PostgreSQL backend, anything else is treated as
// a SQLite file path.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = deriveDriver(cfg.Storage.DB.DSN)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.AccessTokenDuration <= 0 || cfg.Auth.RefreshTokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func deriveDriver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}

	return DriverSQLite
}
