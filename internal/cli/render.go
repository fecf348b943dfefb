package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/supermatch/internal/models"
)

func renderCard(u models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s (%s)\n", u.Username, u.Age, u.Race)
	if u.Family != "" {
		fmt.Fprintf(&b, "  Family:      %s\n", u.Family)
	}
	fmt.Fprintf(&b, "  Looking for: %s\n", u.LookingFor)
	fmt.Fprintf(&b, "  About:       %s", u.About)
	if u.Avatar != "" {
		fmt.Fprintf(&b, "\n  Avatar:      %s", u.Avatar)
	}
	return b.String()
}

// renderMatch shows m from the point of view of viewerID.
func (a *App) renderMatch(m models.Match, viewerID string) string {
	name := "(deleted user)"
	if p := a.store.User(m.Partner(viewerID)); p != nil {
		name = p.Username
	}
	flag := ""
	if m.IsNew {
		flag = " [new]"
	}
	return fmt.Sprintf("%s  %s  %s%s", m.ID, name, m.CreatedAt.Format("2006-01-02 15:04"), flag)
}

func renderUserRow(u models.User) string {
	family := u.Family
	if family == "" {
		family = "-"
	}
	return fmt.Sprintf("%s  %s  %s  %s  family: %s  looking for: %s",
		u.ID, u.Username, u.Race, u.Age, family, u.LookingFor)
}
