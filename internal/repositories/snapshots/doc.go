// Package snapshots persists named, versioned store snapshots in the local
// SQLite database. Each name holds exactly one row; saving again bumps its
// revision. Snapshots are never deleted, only overwritten.
package snapshots
