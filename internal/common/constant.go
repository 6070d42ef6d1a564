// Package common contains constants and small helpers shared by the SuperApp
// client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the opaque token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates a client call with backend logs.
	RequestIDHeaderName = "X-Request-ID"

	// ContentTypeJSON is the fixed content type of every API call.
	ContentTypeJSON = "application/json"
)
