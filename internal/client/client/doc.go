// Package client is the gateway between the SuperApp CLI and the backend
// REST API.
//
// # Overview
//
// The package provides:
//  1. The Client interface: one typed call per backend operation
//     (Register, Login, GetFeed, CreatePost, RequestRide, GetRideStatus,
//     CreateProposal, GetProposals, HealthCheck).
//  2. HTTPClient, the net/http implementation. It is built once with a fixed
//     origin; calls go to <origin>/api/v1 and the health check to
//     <origin>/health.
//  3. An http.RoundTripper decorator that attaches "Authorization: Bearer
//     <token>" from the Session and, on 401 (optionally 403), clears the
//     session and calls Navigator.NavigateToLogin exactly once.
//
// # Error Handling
//
// Transport failures are returned as net/http produced them. A non-2xx
// response becomes *APIError with the raw body; errors.Is matches it
// against ErrUnauthorized (401), ErrForbidden (403) and ErrUnavailable
// (502, 503, 504). Nothing is retried.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call takes a context.Context
// and honors cancellation; the per-request timeout comes from config.
package client
