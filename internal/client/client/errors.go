package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrMalformedResponse = errors.New("malformed response body")
	ErrEmptyRideID       = errors.New("ride id is empty")
)

// APIError is a non-2xx answer from the backend. Body is kept as received;
// interpreting it is up to the caller.
type APIError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("api error: %s", e.Status)
	}
	return fmt.Sprintf("api error: %s: %s", e.Status, e.Body)
}

// Is lets callers match an APIError against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrUnavailable:
		switch e.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}
