package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/supermatch/internal/models"
	"github.com/dmitrijs2005/supermatch/internal/repositories/snapshots"
)

var errDiskFull = errors.New("disk full")

// memRepo keeps snapshots in memory and can be told to fail.
type memRepo struct {
	mu      sync.Mutex
	snaps   map[string]snapshots.Snapshot
	saves   int
	saveErr error
	loadErr error
}

func newMemRepo() *memRepo {
	return &memRepo{snaps: make(map[string]snapshots.Snapshot)}
}

func (r *memRepo) Load(_ context.Context, name string) (*snapshots.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	s, ok := r.snaps[name]
	if !ok {
		return nil, nil
	}
	s.Data = slices.Clone(s.Data)
	return &s, nil
}

func (r *memRepo) Save(_ context.Context, name string, schemaVersion int, data []byte) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return 0, r.saveErr
	}
	r.saves++
	s := r.snaps[name]
	s.Name = name
	s.SchemaVersion = schemaVersion
	s.Revision++
	s.Data = slices.Clone(data)
	s.UpdatedAt = time.Now()
	r.snaps[name] = s
	return s.Revision, nil
}

func (r *memRepo) put(name string, schemaVersion int, data string) {
	r.snaps[name] = snapshots.Snapshot{Name: name, SchemaVersion: schemaVersion, Revision: 1, Data: []byte(data)}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func fixedClock() func() time.Time {
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return t0 }
}

func always(v bool) func() bool {
	return func() bool { return v }
}

func newTestStore(t *testing.T, repo snapshots.Repository, opts ...Option) *Store {
	t.Helper()
	base := []Option{WithIDGenerator(sequentialIDs()), WithClock(fixedClock()), WithCoin(always(true))}
	s, err := New(context.Background(), repo, append(base, opts...)...)
	require.NoError(t, err)
	return s
}

func profile(name string, race models.Race, lookingFor models.LookingFor) models.Profile {
	return models.Profile{
		Username:   name,
		Age:        30,
		Race:       race,
		LookingFor: lookingFor,
		About:      "about " + name,
	}
}

// mustCreate creates a user and logs out again.
func mustCreate(t *testing.T, s *Store, p models.Profile) *models.User {
	t.Helper()
	ctx := context.Background()
	u, err := s.CreateUser(ctx, p)
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))
	return u
}

func mustLogin(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	u, err := s.Login(context.Background(), username)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}
