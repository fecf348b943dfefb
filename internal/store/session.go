package store

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/supermatch/internal/models"
)

// Login makes the first user named username the session. There is no
// credential check. A miss returns nil and leaves the session alone.
func (s *Store) Login(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.st.users, func(u models.User) bool { return u.Username == username })
	if i < 0 {
		s.log.Debug(ctx, "login miss", "username", username)
		return nil, nil
	}
	id := s.st.users[i].ID

	err := s.mutate(ctx, "login", func(st *state) bool {
		st.currentID = id
		return true
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "logged in", "user_id", id)
	return s.st.current(), nil
}

// Logout clears the session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, "logout", func(st *state) bool {
		st.currentID = ""
		return true
	})
}

// CreateUser appends a new user built from p and logs it in.
func (s *Store) CreateUser(ctx context.Context, p models.Profile) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{ID: s.uniqueID(), Profile: p, CreatedAt: s.now()}
	err := s.mutate(ctx, "create user", func(st *state) bool {
		st.users = append(st.users, u)
		st.currentID = u.ID
		return true
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "user created", "user_id", u.ID, "race", u.Race)
	return &u, nil
}

// UpdateUser replaces the editable fields of the current user. It returns
// nil without a session.
func (s *Store) UpdateUser(ctx context.Context, p models.Profile) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.st.current()
	if cur == nil {
		return nil, nil
	}
	updated := cur.WithProfile(p)

	err := s.mutate(ctx, "update user", func(st *state) bool {
		st.users[st.userIndex(updated.ID)] = updated
		return true
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "user updated", "user_id", updated.ID)
	return &updated, nil
}

// DeleteUser removes id from the directory together with every match it is
// part of and its own decisions. Deleting the session user logs out.
// Unknown ids are ignored.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.mutate(ctx, "delete user", func(st *state) bool {
		i := st.userIndex(id)
		if i < 0 {
			return false
		}
		st.users = slices.Delete(st.users, i, i+1)
		st.matches = slices.DeleteFunc(st.matches, func(m models.Match) bool { return m.Involves(id) })
		delete(st.decisions, id)
		if st.currentID == id {
			st.currentID = ""
		}
		return true
	})
	if err != nil {
		return err
	}
	s.log.Debug(ctx, "user deleted", "user_id", id)
	return nil
}

// uniqueID draws ids until one is unused by users and matches.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id == "" || s.st.userIndex(id) >= 0 {
			continue
		}
		if slices.ContainsFunc(s.st.matches, func(m models.Match) bool { return m.ID == id }) {
			continue
		}
		return id
	}
}
