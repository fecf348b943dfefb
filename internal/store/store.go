package store

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/supermatch/internal/common"
	"github.com/dmitrijs2005/supermatch/internal/logging"
	"github.com/dmitrijs2005/supermatch/internal/models"
	"github.com/dmitrijs2005/supermatch/internal/repositories/snapshots"
)

// Store is the matching store. Use New to build one.
type Store struct {
	mu sync.RWMutex
	st state

	repo         snapshots.Repository
	snapshotName string
	log          logging.Logger

	now   func() time.Time
	coin  func() bool
	newID func() string
}

type Option func(*Store)

// WithClock replaces time.Now for created-at timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCoin replaces the reciprocity simulator used by LikeUser. It must
// return true for a simulated mutual like.
func WithCoin(coin func() bool) Option {
	return func(s *Store) { s.coin = coin }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithSnapshotName(name string) Option {
	return func(s *Store) { s.snapshotName = name }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// fairCoin lands heads half of the time.
func fairCoin() bool {
	return rand.IntN(2) == 0
}

// New builds a Store and restores the snapshot stored in repo, if any.
func New(ctx context.Context, repo snapshots.Repository, opts ...Option) (*Store, error) {
	s := &Store{
		st:           newState(),
		repo:         repo,
		snapshotName: common.DefaultSnapshotName,
		log:          logging.Nop{},
		now:          time.Now,
		coin:         fairCoin,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("snapshot", s.snapshotName)

	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// mutate applies fn to a copy of the state. When fn reports a change the copy
// is persisted and, on success, becomes the live state. Callers hold s.mu.
func (s *Store) mutate(ctx context.Context, op string, fn func(st *state) bool) error {
	next := s.st.clone()
	if !fn(&next) {
		return nil
	}

	if err := s.persist(ctx, next); err != nil {
		s.log.Error(ctx, "failed to persist store", "op", op, "error", err)
		return err
	}
	s.st = next
	return nil
}

// CurrentUser returns the session user, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.current()
}

// User looks a directory entry up by id.
func (s *Store) User(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.user(id)
}

// Users returns the whole directory in insertion order.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.st.users)
}

// AvailableUsers returns the candidates the current user has not decided on
// yet and whose race satisfies the current user's preference, in directory
// order. It is empty without a session.
func (s *Store) AvailableUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur := s.st.current()
	if cur == nil {
		return []models.User{}
	}
	decided := s.st.decisions[cur.ID]

	out := make([]models.User, 0, len(s.st.users))
	for _, u := range s.st.users {
		if u.ID == cur.ID || decided.Decided(u.ID) {
			continue
		}
		if !cur.LookingFor.Accepts(u.Race) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Matches returns every match in creation order.
func (s *Store) Matches() []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.st.matches)
}

// NewMatches returns the unread matches in creation order.
func (s *Store) NewMatches() []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterMatches(s.st.matches, func(m models.Match) bool { return m.IsNew })
}

// MatchesFor returns the matches userID takes part in.
func (s *Store) MatchesFor(userID string) []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterMatches(s.st.matches, func(m models.Match) bool { return m.Involves(userID) })
}

func filterMatches(ms []models.Match, keep func(models.Match) bool) []models.Match {
	out := make([]models.Match, 0, len(ms))
	for _, m := range ms {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
