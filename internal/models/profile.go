package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProfile = errors.New("invalid profile")

	ErrUsernameRequired   = fmt.Errorf("%w: enter your username", ErrInvalidProfile)
	ErrAgeRequired        = fmt.Errorf("%w: select your age", ErrInvalidProfile)
	ErrRaceRequired       = fmt.Errorf("%w: select your race", ErrInvalidProfile)
	ErrLookingForRequired = fmt.Errorf("%w: select what you are looking for", ErrInvalidProfile)
	ErrAboutRequired      = fmt.Errorf("%w: write something about yourself", ErrInvalidProfile)
)

// Validate checks the form preconditions for signup and edit, reporting the
// first missing field. The store does not call it; front ends do.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Username) == "" {
		return ErrUsernameRequired
	}
	if !p.Age.IsSet() {
		return ErrAgeRequired
	}
	if _, err := ParseRace(string(p.Race)); err != nil {
		return ErrRaceRequired
	}
	if _, err := ParseLookingFor(string(p.LookingFor)); err != nil {
		return ErrLookingForRequired
	}
	if strings.TrimSpace(p.About) == "" {
		return ErrAboutRequired
	}
	return nil
}
