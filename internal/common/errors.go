// Package common defines shared constants and sentinel errors used across
// supermatch components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Snapshot errors.
	ErrUnsupportedSnapshotVersion = errors.New("unsupported snapshot version")
	ErrCorruptSnapshot            = errors.New("corrupt snapshot")

	// Session errors (used by the CLI, the store itself signals with nil results).
	ErrNoSession = errors.New("no active session")

	// Admin errors.
	ErrAdminLocked = errors.New("admin mode locked")
)
