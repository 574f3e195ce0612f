package config

import "time"

// Default values applied when no other configuration source provides one.
// The superuser credentials mirror the well-known bootstrap account and are
// expected to be overridden in any real deployment.
const (
	DefaultHTTPAddress          = ":8080"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultTokenIssuer          = "itemvault"
	DefaultAccessTokenDuration  = 30 * time.Minute
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour

	DefaultFirstSuperuserEmail    = "admin@example.com"
	DefaultFirstSuperuserPassword = "admin123"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Auth: Auth{
			TokenIssuer:            DefaultTokenIssuer,
			AccessTokenDuration:    DefaultAccessTokenDuration,
			RefreshTokenDuration:   DefaultRefreshTokenDuration,
			FirstSuperuserEmail:    DefaultFirstSuperuserEmail,
			FirstSuperuserPassword: DefaultFirstSuperuserPassword,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
