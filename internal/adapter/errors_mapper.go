package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avkarpov/itemvault/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a sentinel error wrapping the
// server's detail message. The server always answers errors with a
// {"detail": "..."} body; a body that fails to decode falls back to the
// status text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	detail := http.StatusText(resp.StatusCode())
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		detail = body.Detail
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}
