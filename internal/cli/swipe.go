package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/supermatch/internal/models"
)

// Next shows the first candidate the current user has not decided on.
func (a *App) Next(_ context.Context) error {
	avail := a.store.AvailableUsers()
	if len(avail) == 0 {
		a.shown = nil
		printlnFn("No more candidates for now. Come back later!")
		return nil
	}
	u := avail[0]
	a.shown = &u
	printlnFn(renderCard(u))
	printlnFn("like, pass or super?")
	return nil
}

func (a *App) Like(ctx context.Context) error {
	return a.decide(ctx, "like", func(id string) (*models.Match, error) {
		return a.store.LikeUser(ctx, id)
	})
}

func (a *App) Pass(ctx context.Context) error {
	return a.decide(ctx, "pass", func(id string) (*models.Match, error) {
		return nil, a.store.PassUser(ctx, id)
	})
}

func (a *App) SuperLike(ctx context.Context) error {
	return a.decide(ctx, "super-like", func(id string) (*models.Match, error) {
		return a.store.SuperLikeUser(ctx, id)
	})
}

// decide applies act to the shown candidate and moves on to the next card.
func (a *App) decide(ctx context.Context, op string, act func(id string) (*models.Match, error)) error {
	if a.shown == nil {
		printlnFn("No candidate shown. Type 'next' first.")
		return nil
	}
	cand := *a.shown

	m, err := act(cand.ID)
	if err != nil {
		return a.fail(ctx, op, err)
	}
	if m != nil {
		a.badge.Refresh()
		printlnFn(fmt.Sprintf("It's a match! You and %s are now connected.", cand.Username))
	}
	return a.Next(ctx)
}
