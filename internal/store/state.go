package store

import (
	"slices"

	"github.com/dmitrijs2005/supermatch/internal/models"
)

// state is everything the store persists. Mutations work on a clone and the
// clone replaces the live state only after it was saved.
type state struct {
	currentID string
	users     []models.User
	matches   []models.Match
	decisions map[string]ledger
}

func newState() state {
	return state{decisions: make(map[string]ledger)}
}

func (st state) clone() state {
	next := state{
		currentID: st.currentID,
		users:     slices.Clone(st.users),
		matches:   slices.Clone(st.matches),
		decisions: make(map[string]ledger, len(st.decisions)),
	}
	for id, l := range st.decisions {
		next.decisions[id] = l.clone()
	}
	return next
}

func (st *state) userIndex(id string) int {
	return slices.IndexFunc(st.users, func(u models.User) bool { return u.ID == id })
}

func (st *state) user(id string) *models.User {
	if id == "" {
		return nil
	}
	if i := st.userIndex(id); i >= 0 {
		u := st.users[i]
		return &u
	}
	return nil
}

func (st *state) current() *models.User {
	return st.user(st.currentID)
}

func (st *state) linked(a, b string) bool {
	return slices.ContainsFunc(st.matches, func(m models.Match) bool { return m.Links(a, b) })
}
