package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON either as a number
// of nanoseconds or as a duration string such as "30m" or "168h".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration value")
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration fields for use in config files.
type StructuredJSONConfig struct {
	App struct {
		Version     string   `json:"version"`
		CORSOrigins []string `json:"cors_origins"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		AccessTokenDuration    Duration `json:"access_token_duration"`
		RefreshTokenDuration   Duration `json:"refresh_token_duration"`
		FirstSuperuserEmail    string   `json:"first_superuser_email"`
		FirstSuperuserPassword string   `json:"first_superuser_password"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:     jsonCfg.App.Version,
			CORSOrigins: jsonCfg.App.CORSOrigins,
		},
		Auth: Auth{
			TokenSignKey:           jsonCfg.Auth.TokenSignKey,
			TokenIssuer:            jsonCfg.Auth.TokenIssuer,
			AccessTokenDuration:    time.Duration(jsonCfg.Auth.AccessTokenDuration),
			RefreshTokenDuration:   time.Duration(jsonCfg.Auth.RefreshTokenDuration),
			FirstSuperuserEmail:    jsonCfg.Auth.FirstSuperuserEmail,
			FirstSuperuserPassword: jsonCfg.Auth.FirstSuperuserPassword,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}
