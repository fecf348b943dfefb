// Package cli is the interactive supermatch terminal front end.
//
// It wires the matching store, the new-match watcher and the admin gate into
// a read-eval-print loop. Logged out, a visitor can log in, create an account
// or unlock admin mode. Logged in, a user browses candidates one card at a
// time and likes, passes or super-likes them, reviews matches and edits the
// profile.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
