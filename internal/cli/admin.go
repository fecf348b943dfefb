package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/supermatch/internal/common"
)

// Admin asks for the admin secret and switches to admin mode on success.
func (a *App) Admin(ctx context.Context) error {
	secret, err := getPassword(a.out, "Enter admin secret: ")
	if err != nil {
		return a.fail(ctx, "read admin secret", err)
	}
	defer common.WipeByteArray(secret)

	if !a.gate.Unlock(string(secret)) {
		a.log.Warn(ctx, "admin unlock refused")
		printlnFn("Wrong secret. Access denied.")
		return common.ErrAdminLocked
	}

	a.admin = true
	printlnFn("Admin mode.", helpAdmin)
	return nil
}

// ListUsers prints every account in the directory.
func (a *App) ListUsers(_ context.Context) error {
	users := a.store.Users()
	if len(users) == 0 {
		printlnFn("No users yet.")
		return nil
	}
	printlnFn(fmt.Sprintf("Total users: %d", len(users)))
	for _, u := range users {
		printlnFn(renderUserRow(u))
	}
	return nil
}

// DeleteUser removes an account and its matches.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	u := a.store.User(id)
	if u == nil {
		printlnFn("No user with id", id)
		return common.ErrorNotFound
	}

	if err := a.store.DeleteUser(ctx, id); err != nil {
		return a.fail(ctx, "delete user", err)
	}
	if a.shown != nil && a.shown.ID == id {
		a.shown = nil
	}
	a.badge.Refresh()
	a.log.Info(ctx, "user deleted by admin", "user_id", id)
	printlnFn(fmt.Sprintf("User deleted: %s was removed", u.Username))
	return nil
}

// LeaveAdmin goes back to the logged-out commands.
func (a *App) LeaveAdmin(_ context.Context) error {
	a.admin = false
	return nil
}
