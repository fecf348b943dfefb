package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/supermatch/internal/common"
	"github.com/dmitrijs2005/supermatch/internal/models"
)

// document is the persisted shape of the store.
type document struct {
	SchemaVersion int               `json:"schemaVersion"`
	CurrentUserID string            `json:"currentUserId,omitempty"`
	Users         []models.User     `json:"users"`
	Matches       []models.Match    `json:"matches"`
	Decisions     map[string]ledger `json:"decisions"`
}

func encodeState(st state) ([]byte, error) {
	doc := document{
		SchemaVersion: common.SnapshotSchemaVersion,
		CurrentUserID: st.currentID,
		Users:         st.users,
		Matches:       st.matches,
		Decisions:     st.decisions,
	}
	if doc.Users == nil {
		doc.Users = []models.User{}
	}
	if doc.Matches == nil {
		doc.Matches = []models.Match{}
	}
	return json.Marshal(doc)
}

func decodeState(data []byte) (state, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return state{}, fmt.Errorf("%w: %w", common.ErrCorruptSnapshot, err)
	}
	if doc.SchemaVersion != common.SnapshotSchemaVersion {
		return state{}, fmt.Errorf("%w: %d", common.ErrUnsupportedSnapshotVersion, doc.SchemaVersion)
	}

	st := newState()
	st.users = doc.Users
	st.matches = doc.Matches
	for id, l := range doc.Decisions {
		st.decisions[id] = l
	}
	if st.user(doc.CurrentUserID) != nil {
		st.currentID = doc.CurrentUserID
	}
	return st, nil
}

func (s *Store) persist(ctx context.Context, st state) error {
	data, err := encodeState(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	rev, err := s.repo.Save(ctx, s.snapshotName, common.SnapshotSchemaVersion, data)
	if err != nil {
		return err
	}
	s.log.Debug(ctx, "snapshot saved", "revision", rev, "bytes", len(data))
	return nil
}

func (s *Store) restore(ctx context.Context) error {
	snap, err := s.repo.Load(ctx, s.snapshotName)
	if err != nil {
		return err
	}
	if snap == nil {
		s.log.Debug(ctx, "no snapshot, starting empty")
		return nil
	}
	if snap.SchemaVersion != common.SnapshotSchemaVersion {
		return fmt.Errorf("%w: %d", common.ErrUnsupportedSnapshotVersion, snap.SchemaVersion)
	}

	st, err := decodeState(snap.Data)
	if err != nil {
		return err
	}
	s.st = st
	s.log.Info(ctx, "snapshot restored",
		"revision", snap.Revision, "users", len(st.users), "matches", len(st.matches))
	return nil
}
