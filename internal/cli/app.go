package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/dmitrijs2005/supermatch/internal/admin"
	"github.com/dmitrijs2005/supermatch/internal/logging"
	"github.com/dmitrijs2005/supermatch/internal/models"
	"github.com/dmitrijs2005/supermatch/internal/notify"
)

// Store is the part of the matching store the CLI drives.
type Store interface {
	CurrentUser() *models.User
	Users() []models.User
	User(id string) *models.User
	AvailableUsers() []models.User
	NewMatches() []models.Match
	MatchesFor(userID string) []models.Match

	Login(ctx context.Context, username string) (*models.User, error)
	Logout(ctx context.Context) error
	CreateUser(ctx context.Context, p models.Profile) (*models.User, error)
	UpdateUser(ctx context.Context, p models.Profile) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	LikeUser(ctx context.Context, candidateID string) (*models.Match, error)
	PassUser(ctx context.Context, candidateID string) error
	SuperLikeUser(ctx context.Context, candidateID string) (*models.Match, error)
	MarkMatchAsRead(ctx context.Context, matchID string) error
}

// Badge is the new-match counter shown in the prompt.
type Badge interface {
	Start() error
	Stop()
	Count() int
	Refresh()
}

type App struct {
	store  Store
	badge  Badge
	gate   *admin.Gate
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// shown is the candidate card like, pass and super act on.
	shown *models.User
	admin bool

	intN func(n int) int
}

func NewApp(st Store, badge Badge, gate *admin.Gate, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:  st,
		badge:  badge,
		gate:   gate,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		intN:   rand.IntN,
	}
}

// Run starts the badge watcher and blocks in the REPL until the user leaves
// or ctx is done.
func (a *App) Run(ctx context.Context) {
	if err := a.badge.Start(); err != nil {
		a.log.Error(ctx, "failed to start match watcher", "error", err)
	}
	defer a.badge.Stop()

	printlnFn("Welcome to Supermatch, where supernatural hearts meet (type 'help' for commands)")
	if u := a.store.CurrentUser(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Username))
	}
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.store.CurrentUser() != nil
}

func (a *App) isAdmin() bool {
	return a.admin
}

func (a *App) status() string {
	if a.admin {
		return "(admin)"
	}
	u := a.store.CurrentUser()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s ★%d)", u.Username, a.badge.Count())
}

// fail logs err against op and tells the user.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.log.Error(ctx, "command failed", "op", op, "error", err)
	printlnFn(fmt.Sprintf("Error: could not %s: %s", op, err))
	return err
}

// sessionMatches narrows the store's new matches to the logged-in user.
type sessionMatches struct {
	store Store
}

// SessionMatches adapts st for the badge watcher: only unread matches the
// current user takes part in are counted.
func SessionMatches(st Store) notify.MatchSource {
	return sessionMatches{store: st}
}

func (s sessionMatches) NewMatches() []models.Match {
	u := s.store.CurrentUser()
	if u == nil {
		return nil
	}
	var out []models.Match
	for _, m := range s.store.NewMatches() {
		if m.Involves(u.ID) {
			out = append(out, m)
		}
	}
	return out
}
