package snapshots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/supermatch/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context, name string) (*Snapshot, error) {
	s := &Snapshot{Name: name}
	err := r.db.QueryRowContext(ctx,
		`SELECT schema_version, revision, data, updated_at FROM snapshots WHERE name = ?`, name).
		Scan(&s.SchemaVersion, &s.Revision, &s.Data, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot[%s]: %w", name, err)
	}
	return s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, name string, schemaVersion int, data []byte) (int64, error) {
	var revision int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO snapshots (name, schema_version, revision, data, updated_at)
		VALUES (?, ?, 1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			schema_version = excluded.schema_version,
			revision = snapshots.revision + 1,
			data = excluded.data,
			updated_at = excluded.updated_at
		RETURNING revision
	`, name, schemaVersion, data).Scan(&revision)
	if err != nil {
		return 0, fmt.Errorf("failed to save snapshot[%s]: %w", name, err)
	}
	return revision, nil
}
