package store

import (
	"context"

	"github.com/dmitrijs2005/supermatch/internal/models"
)

// LikeUser records a like from the session user. When the candidate exists,
// the pair is not matched yet and the coin lands on a simulated mutual like,
// a new match is created and returned. Repeated likes are no-ops.
func (s *Store) LikeUser(ctx context.Context, candidateID string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.st.current()
	if cur == nil || s.st.decisions[cur.ID].Liked.Contains(candidateID) {
		return nil, nil
	}

	var match *models.Match
	if s.st.user(candidateID) != nil && !s.st.linked(cur.ID, candidateID) && s.coin() {
		m := s.newMatch(cur.ID, candidateID)
		match = &m
	}

	err := s.mutate(ctx, "like", func(st *state) bool {
		l := st.decisions[cur.ID]
		l.Liked, _ = l.Liked.Add(candidateID)
		st.decisions[cur.ID] = l
		if match != nil {
			st.matches = append(st.matches, *match)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "liked", "user_id", cur.ID, "candidate_id", candidateID, "matched", match != nil)
	return match, nil
}

// PassUser records a pass from the session user. It is idempotent and does
// nothing without a session.
func (s *Store) PassUser(ctx context.Context, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.st.current()
	if cur == nil {
		return nil
	}

	return s.mutate(ctx, "pass", func(st *state) bool {
		l := st.decisions[cur.ID]
		var added bool
		l.Passed, added = l.Passed.Add(candidateID)
		st.decisions[cur.ID] = l
		return added
	})
}

// SuperLikeUser records a super-like and always creates a match. A repeated
// super-like of the same candidate is a no-op.
func (s *Store) SuperLikeUser(ctx context.Context, candidateID string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.st.current()
	if cur == nil || s.st.decisions[cur.ID].SuperLiked.Contains(candidateID) {
		return nil, nil
	}

	m := s.newMatch(cur.ID, candidateID)
	err := s.mutate(ctx, "super-like", func(st *state) bool {
		l := st.decisions[cur.ID]
		l.SuperLiked, _ = l.SuperLiked.Add(candidateID)
		st.decisions[cur.ID] = l
		st.matches = append(st.matches, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "super-liked", "user_id", cur.ID, "candidate_id", candidateID, "match_id", m.ID)
	return &m, nil
}

// MarkMatchAsRead clears the new flag of matchID. Unknown ids and matches
// already read are ignored.
func (s *Store) MarkMatchAsRead(ctx context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, "mark read", func(st *state) bool {
		for i := range st.matches {
			if st.matches[i].ID == matchID && st.matches[i].IsNew {
				st.matches[i].IsNew = false
				return true
			}
		}
		return false
	})
}

func (s *Store) newMatch(user1, user2 string) models.Match {
	return models.Match{
		ID:        s.uniqueID(),
		User1ID:   user1,
		User2ID:   user2,
		CreatedAt: s.now(),
		IsNew:     true,
	}
}
