package models

// TokenPair is the response body of the login and refresh endpoints.
// TokenTypeHint is always "bearer".
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body of the unauthenticated liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
