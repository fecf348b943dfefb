package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/supermatch/internal/gallery"
	"github.com/dmitrijs2005/supermatch/internal/models"
)

var errFamilyRequired = fmt.Errorf("%w: tell us whether you are from a family", models.ErrInvalidProfile)

// profileForm is a filled signup or edit form.
type profileForm struct {
	profile models.Profile
	// familyAnswered is false until the family question got a yes or no.
	familyAnswered bool
}

// validate reports the first problem in form order. The family question
// sits between race and preference.
func (f profileForm) validate() error {
	err := f.profile.Validate()
	if f.familyAnswered {
		return err
	}
	if err == nil || errors.Is(err, models.ErrLookingForRequired) || errors.Is(err, models.ErrAboutRequired) {
		return errFamilyRequired
	}
	return err
}

// withDefault renders a prompt and, when editing, the value kept on empty
// input.
func withDefault(prompt, cur string) string {
	if cur == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, cur)
}

func joinOptions[T ~string](opts []T) string {
	s := make([]string, len(opts))
	for i, o := range opts {
		s[i] = string(o)
	}
	return strings.Join(s, ", ")
}

// fillProfile walks the user through every profile field. Empty answers keep
// the value from cur, so an edit form starts prefilled.
func (a *App) fillProfile(cur models.Profile, editing bool) (profileForm, error) {
	form := profileForm{profile: cur, familyAnswered: editing}
	p := &form.profile

	ask := func(prompt, def string) (string, error) {
		return getSimpleText(a.reader, withDefault(prompt, def), a.out)
	}

	in, err := ask("Username", cur.Username)
	if err != nil {
		return form, err
	}
	if in != "" {
		p.Username = in
	}

	ageDef := ""
	if cur.Age.IsSet() {
		ageDef = cur.Age.String()
	}
	if in, err = ask("Age (18-100 or 100+)", ageDef); err != nil {
		return form, err
	}
	if in != "" {
		// unparsable answers clear the field and fail validation
		p.Age, _ = models.ParseAge(in)
	}

	if in, err = ask("Race ("+joinOptions(models.Races)+")", string(cur.Race)); err != nil {
		return form, err
	}
	if in != "" {
		p.Race, _ = models.ParseRace(in)
	}

	familyDef := ""
	if editing {
		familyDef = "n"
		if cur.Family != "" {
			familyDef = "y"
		}
	}
	if in, err = ask("Are you from a family? (y/n)", familyDef); err != nil {
		return form, err
	}
	switch strings.ToLower(in) {
	case "y", "yes":
		form.familyAnswered = true
		name, err := ask("Family name (e.g. House of Ravens)", cur.Family)
		if err != nil {
			return form, err
		}
		if name != "" {
			p.Family = name
		}
	case "n", "no":
		form.familyAnswered = true
		p.Family = ""
	case "":
	default:
		form.familyAnswered = false
	}

	if in, err = ask("Looking for ("+joinOptions(models.Preferences)+")", string(cur.LookingFor)); err != nil {
		return form, err
	}
	if in != "" {
		p.LookingFor, _ = models.ParseLookingFor(in)
	}

	if in, err = ask("About you", cur.About); err != nil {
		return form, err
	}
	if in != "" {
		p.About = in
	}

	avatar, err := a.pickAvatar(cur.Avatar)
	if err != nil {
		return form, err
	}
	p.Avatar = avatar
	return form, nil
}

// pickAvatar offers the gallery presets. Empty input keeps cur.
func (a *App) pickAvatar(cur string) (string, error) {
	for i, url := range gallery.Presets() {
		printlnFn(fmt.Sprintf("  %d) %s", i+1, url))
	}
	in, err := getSimpleText(a.reader, "Avatar: pick 1-9, r for random, Enter to skip", a.out)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(in) {
	case "":
		return cur, nil
	case "r", "random":
		url := gallery.Random(a.intN)
		printlnFn("Avatar selected!")
		return url, nil
	}

	n, err := strconv.Atoi(in)
	if err != nil {
		printlnFn("Unknown avatar, keeping the current one")
		return cur, nil
	}
	url, ok := gallery.Pick(n)
	if !ok {
		printlnFn("Unknown avatar, keeping the current one")
		return cur, nil
	}
	printlnFn("Avatar selected!")
	return url, nil
}
