package models

import "time"

// Match links two users after a like or super-like. IsNew stays true until
// the match is marked read.
type Match struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1Id"`
	User2ID   string    `json:"user2Id"`
	CreatedAt time.Time `json:"createdAt"`
	IsNew     bool      `json:"isNew"`
}

func (m Match) Involves(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// Links reports whether m joins a and b, in either order.
func (m Match) Links(a, b string) bool {
	return (m.User1ID == a && m.User2ID == b) || (m.User1ID == b && m.User2ID == a)
}

// Partner returns the other side of the match as seen by userID.
func (m Match) Partner(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}
