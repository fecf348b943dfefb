package snapshots

import (
	"context"
	"time"
)

// Snapshot is one stored blob together with its bookkeeping columns.
type Snapshot struct {
	Name          string
	SchemaVersion int
	Revision      int64
	Data          []byte
	UpdatedAt     time.Time
}

type Repository interface {
	// Load returns (nil, nil) when nothing is stored under name.
	Load(ctx context.Context, name string) (*Snapshot, error)
	// Save upserts the blob and returns the new revision.
	Save(ctx context.Context, name string, schemaVersion int, data []byte) (int64, error)
}
