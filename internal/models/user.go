// Package models defines the supermatch data model: users, their editable
// profile, and matches between two users.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Race is the creature kind a user belongs to.
type Race string

const (
	RaceDraeven Race = "Draeven"
	RaceSylven  Race = "Sylven"
	RaceLunari  Race = "Lunari"
)

// Races lists every race in display order.
var Races = []Race{RaceDraeven, RaceSylven, RaceLunari}

var ErrUnknownRace = errors.New("unknown race")

// ParseRace accepts a race name, case-insensitively.
func ParseRace(s string) (Race, error) {
	for _, r := range Races {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRace, s)
}

// LookingFor is the race preference used to filter candidates.
type LookingFor string

const (
	LookingForDraeven LookingFor = "Draeven"
	LookingForSylven  LookingFor = "Sylven"
	LookingForLunari  LookingFor = "Lunari"
	LookingForAll     LookingFor = "Todos"
)

var Preferences = []LookingFor{LookingForDraeven, LookingForSylven, LookingForLunari, LookingForAll}

var ErrUnknownPreference = errors.New("unknown preference")

func ParseLookingFor(s string) (LookingFor, error) {
	for _, p := range Preferences {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreference, s)
}

// Accepts reports whether a candidate of race r satisfies the preference.
func (p LookingFor) Accepts(r Race) bool {
	return p == LookingForAll || string(p) == string(r)
}

// Age is a user's age: 18 or more, or the open-ended AgeHundredPlus.
// The zero value means "not selected".
type Age int

const (
	MinAge Age = 18
	MaxAge Age = 100

	// AgeHundredPlus is rendered and encoded as "100+".
	AgeHundredPlus Age = -1
)

const hundredPlus = "100+"

var ErrInvalidAge = errors.New("invalid age")

// ParseAge accepts "18".."100", "100+" and "+100".
func ParseAge(s string) (Age, error) {
	s = strings.TrimSpace(s)
	if s == hundredPlus || s == "+100" {
		return AgeHundredPlus, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || Age(n) < MinAge || Age(n) > MaxAge {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAge, s)
	}
	return Age(n), nil
}

func (a Age) IsSet() bool {
	return a == AgeHundredPlus || a >= MinAge
}

func (a Age) String() string {
	if a == AgeHundredPlus {
		return hundredPlus
	}
	return strconv.Itoa(int(a))
}

func (a Age) MarshalJSON() ([]byte, error) {
	if a == AgeHundredPlus {
		return json.Marshal(hundredPlus)
	}
	return json.Marshal(int(a))
}

func (a *Age) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*a = Age(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAge, string(b))
	}
	parsed, err := ParseAge(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Profile holds the editable fields of a user.
type Profile struct {
	Username   string     `json:"username"`
	Age        Age        `json:"age"`
	Race       Race       `json:"race"`
	Family     string     `json:"family,omitempty"`
	LookingFor LookingFor `json:"lookingFor"`
	About      string     `json:"about"`
	Avatar     string     `json:"avatar,omitempty"`
}

// User is a directory record. ID and CreatedAt never change after creation.
type User struct {
	ID string `json:"id"`
	Profile
	CreatedAt time.Time `json:"createdAt"`
}

// WithProfile returns a copy of u carrying p as its editable fields.
func (u User) WithProfile(p Profile) User {
	u.Profile = p
	return u
}
