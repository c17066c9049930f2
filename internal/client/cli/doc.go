// Package cli provides the interactive authdemo terminal client.
//
// It wires configuration and the shared session core (see package
// bootstrap) into a REPL:
//
//   - register / login / logout
//   - profile and dashboard, both behind the route guard: when no session is
//     active the login flow runs first and the command resumes afterwards
//   - whoami, which prints the in-memory session without any network call
//
// A persisted session is restored before the first prompt. A background
// watcher pings the record store and shows online/offline in the prompt.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
