// Package cli provides the interactive SuperApp command-line client.
//
// The CLI is the user surface of the client library: it owns the login
// prompt, drives every backend call, and reacts when the gateway forces the
// user back to login after the backend rejects the session token.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - Social feed and posting
//   - Ride requests and status lookups
//   - DAO proposals
//   - Background online/offline watcher over the health endpoint
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, LoginNavigator and runREPL for details.
package cli
