package store

import "slices"

// idSet is an insertion-ordered set of user ids.
type idSet []string

func (s idSet) Contains(id string) bool {
	return slices.Contains(s, id)
}

// Add returns the set with id appended, and whether it was missing.
func (s idSet) Add(id string) (idSet, bool) {
	if s.Contains(id) {
		return s, false
	}
	return append(s, id), true
}

// ledger records one user's one-way decisions about candidates.
type ledger struct {
	Liked      idSet `json:"liked"`
	Passed     idSet `json:"passed"`
	SuperLiked idSet `json:"superLiked"`
}

// Decided reports whether any decision about id exists.
func (l ledger) Decided(id string) bool {
	return l.Liked.Contains(id) || l.Passed.Contains(id) || l.SuperLiked.Contains(id)
}

func (l ledger) clone() ledger {
	return ledger{
		Liked:      slices.Clone(l.Liked),
		Passed:     slices.Clone(l.Passed),
		SuperLiked: slices.Clone(l.SuperLiked),
	}
}
