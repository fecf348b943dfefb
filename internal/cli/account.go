package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/supermatch/internal/common"
	"github.com/dmitrijs2005/supermatch/internal/models"
)

// Login asks for a username and opens a session for the first account
// with that name.
func (a *App) Login(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Error: enter your username")
		return nil
	}

	u, err := a.store.Login(ctx, name)
	if err != nil {
		return a.fail(ctx, "log in", err)
	}
	if u == nil {
		printlnFn("User not found. Create an account first.")
		return nil
	}

	a.shown = nil
	a.badge.Refresh()
	printlnFn(fmt.Sprintf("Welcome, %s!", u.Username))
	return nil
}

// Create runs the signup form and logs the new account in.
func (a *App) Create(ctx context.Context) error {
	form, err := a.fillProfile(models.Profile{}, false)
	if err != nil {
		return err
	}
	if err := form.validate(); err != nil {
		printlnFn("Error:", err)
		return err
	}

	u, err := a.store.CreateUser(ctx, form.profile)
	if err != nil {
		return a.fail(ctx, "create account", err)
	}

	a.shown = nil
	a.badge.Refresh()
	printlnFn(fmt.Sprintf("Account created! Welcome to the supernatural world, %s!", u.Username))
	return nil
}

// Profile prints the current user's card.
func (a *App) Profile(_ context.Context) error {
	u := a.store.CurrentUser()
	if u == nil {
		return common.ErrNoSession
	}
	printlnFn(renderCard(*u))
	return nil
}

// Edit runs the profile form prefilled with the current values.
func (a *App) Edit(ctx context.Context) error {
	cur := a.store.CurrentUser()
	if cur == nil {
		return common.ErrNoSession
	}

	form, err := a.fillProfile(cur.Profile, true)
	if err != nil {
		return err
	}
	if err := form.validate(); err != nil {
		printlnFn("Error:", err)
		return err
	}

	u, err := a.store.UpdateUser(ctx, form.profile)
	if err != nil {
		return a.fail(ctx, "update profile", err)
	}
	if u != nil {
		printlnFn("Profile updated!")
	}
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	u := a.store.CurrentUser()
	if err := a.store.Logout(ctx); err != nil {
		return a.fail(ctx, "log out", err)
	}
	a.shown = nil
	a.badge.Refresh()
	if u != nil {
		printlnFn(fmt.Sprintf("See you soon, %s!", u.Username))
	}
	return nil
}
