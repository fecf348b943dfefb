package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validProfile() Profile {
	return Profile{
		Username:   "morrigan",
		Age:        30,
		Race:       RaceDraeven,
		LookingFor: LookingForAll,
		About:      "Night owl.",
	}
}

func TestProfile_Validate_OK(t *testing.T) {
	require.NoError(t, validProfile().Validate())

	p := validProfile()
	p.Age = AgeHundredPlus
	p.Family = "House Vey"
	require.NoError(t, p.Validate())
}

func TestProfile_Validate_ReportsFirstMissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
		want   error
	}{
		{"blank username", func(p *Profile) { p.Username = "   " }, ErrUsernameRequired},
		{"no age", func(p *Profile) { p.Age = 0 }, ErrAgeRequired},
		{"under age", func(p *Profile) { p.Age = 17 }, ErrAgeRequired},
		{"no race", func(p *Profile) { p.Race = "" }, ErrRaceRequired},
		{"no preference", func(p *Profile) { p.LookingFor = "" }, ErrLookingForRequired},
		{"blank about", func(p *Profile) { p.About = "\n" }, ErrAboutRequired},
		{"username wins over about", func(p *Profile) { p.Username = ""; p.About = "" }, ErrUsernameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}
