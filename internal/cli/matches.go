package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/supermatch/internal/common"
	"github.com/dmitrijs2005/supermatch/internal/models"
)

// Matches lists every match the current user is part of.
func (a *App) Matches(_ context.Context) error {
	u := a.store.CurrentUser()
	if u == nil {
		return common.ErrNoSession
	}
	a.printMatches(a.store.MatchesFor(u.ID), u.ID, "No matches yet. Keep swiping!")
	return nil
}

// Notifications lists the current user's unread matches.
func (a *App) Notifications(_ context.Context) error {
	u := a.store.CurrentUser()
	if u == nil {
		return common.ErrNoSession
	}
	a.printMatches(SessionMatches(a.store).NewMatches(), u.ID, "No new notifications.")
	return nil
}

// Read marks one of the current user's matches as read.
func (a *App) Read(ctx context.Context, matchID string) error {
	u := a.store.CurrentUser()
	if u == nil {
		return common.ErrNoSession
	}
	owned := slices.ContainsFunc(a.store.MatchesFor(u.ID), func(m models.Match) bool { return m.ID == matchID })
	if !owned {
		printlnFn("No such match:", matchID)
		return common.ErrorNotFound
	}

	if err := a.store.MarkMatchAsRead(ctx, matchID); err != nil {
		return a.fail(ctx, "mark match as read", err)
	}
	a.badge.Refresh()
	printlnFn("Marked as read")
	return nil
}

func (a *App) printMatches(ms []models.Match, viewerID, empty string) {
	if len(ms) == 0 {
		printlnFn(empty)
		return
	}
	printlnFn(fmt.Sprintf("%d match(es):", len(ms)))
	for _, m := range ms {
		printlnFn(a.renderMatch(m, viewerID))
	}
}
