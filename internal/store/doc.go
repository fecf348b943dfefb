// Package store implements the matching store: the user directory, the
// per-user interaction ledger (liked, passed, super-liked), the match
// registry and the current session.
//
// A Store is built explicitly with New and passed to whoever needs it; there
// is no package-level instance. Every mutating operation writes a complete
// snapshot through a snapshots.Repository before it returns, and New restores
// the last snapshot.
//
// # Error Handling
//
// Lookups that miss and operations that do not apply return nil results and
// a nil error. The only errors are persistence failures; when one happens the
// in-memory state is left as it was before the call.
//
// # Concurrency
//
// All methods are safe for concurrent use. The CLI mutates the store from its
// REPL goroutine while the notification watcher polls NewMatches.
package store
