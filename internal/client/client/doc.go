// Package client contains the client-side transport to the record store.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): ListUsers,
//     CreateUser and Ping.
//  2. A JSON-over-HTTP implementation (see HTTPClient) whose transport
//     injects "Authorization: Bearer <token>" from a TokenSource and runs an
//     UnauthorizedHandler on every 401, regardless of the call.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring a
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// HTTP outcomes are exposed as sentinel errors that callers match with
// errors.Is: ErrUnavailable (network failure or 5xx), ErrUnauthorized
// (401/403), ErrConflict (400/409) and ErrUnexpectedResponse.
//
// There are no retries and no default timeout; pass a context deadline or
// WithTimeout to bound a call.
package client
