package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing application-specific helpers to be attached later
// without touching the upstream type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient constructs an HTTPClient
// with a default-configured underlying resty.Client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
