// Package admin guards the account administration mode behind a shared
// secret.
package admin

import (
	"crypto/subtle"
	"strings"
)

// Gate holds the configured admin secret.
type Gate struct {
	secret []byte
}

func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Unlock reports whether input equals the secret. Surrounding whitespace is
// ignored and an empty secret never unlocks.
func (g *Gate) Unlock(input string) bool {
	if len(g.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(input)), g.secret) == 1
}
