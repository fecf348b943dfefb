package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output.
var printlnFn = fmt.Println
var printFn = fmt.Print

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Login(ctx context.Context) error
	Create(ctx context.Context) error
	Admin(ctx context.Context) error

	Next(ctx context.Context) error
	Like(ctx context.Context) error
	Pass(ctx context.Context) error
	SuperLike(ctx context.Context) error
	Matches(ctx context.Context) error
	Notifications(ctx context.Context) error
	Read(ctx context.Context, matchID string) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Logout(ctx context.Context) error

	ListUsers(ctx context.Context) error
	DeleteUser(ctx context.Context, id string) error
	LeaveAdmin(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, create, admin, exit"
	helpLoggedIn  = "Available commands: next, like, pass, super, matches, notifications, read <id>, profile, edit, logout, exit"
	helpAdmin     = "Available commands: users, delete <id>, back, exit"
)

// runREPL reads commands line by line and dispatches them to a.
//
// The prompt shows the status returned by statusFn. The command set depends
// on the mode:
//
//	Not logged in:
//	  - help            show available commands
//	  - login           log in by username
//	  - create          create an account
//	  - admin           unlock admin mode
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - next            show the next candidate
//	  - like | pass | super
//	                    decide on the shown candidate
//	  - matches         list your matches
//	  - notifications   list new matches
//	  - read <id>       mark a match as read
//	  - profile | edit  show or edit your profile
//	  - logout          log out
//
//	Admin:
//	  - users           list every account
//	  - delete <id>     delete an account
//	  - back            leave admin mode
//
// Errors returned by handlers are ignored here; handlers log their own. The
// loop exits on EOF, on exit or quit, or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		prompt := "sm> "
		if s := statusFn(); s != "" {
			prompt = fmt.Sprintf("sm %s> ", s)
		}
		printFn(prompt)

		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		switch {
		case a.isAdmin():
			dispatchAdmin(ctx, a, cmd, args)
		case a.isLoggedIn():
			dispatchUser(ctx, a, cmd, args)
		default:
			dispatchGuest(ctx, a, cmd)
		}
	}
}

func dispatchGuest(ctx context.Context, a execIface, cmd string) {
	switch cmd {
	case "help":
		printlnFn(helpLoggedOut)
	case "login":
		_ = a.Login(ctx)
	case "create":
		_ = a.Create(ctx)
	case "admin":
		_ = a.Admin(ctx)
	default:
		printlnFn("Unknown command:", cmd)
	}
}

func dispatchUser(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "help":
		printlnFn(helpLoggedIn)
	case "n", "next":
		_ = a.Next(ctx)
	case "like":
		_ = a.Like(ctx)
	case "pass":
		_ = a.Pass(ctx)
	case "super":
		_ = a.SuperLike(ctx)
	case "matches":
		_ = a.Matches(ctx)
	case "notifications":
		_ = a.Notifications(ctx)
	case "read":
		if len(args) == 0 {
			printlnFn("Usage: read <matchId>")
			return
		}
		_ = a.Read(ctx, args[0])
	case "profile":
		_ = a.Profile(ctx)
	case "edit":
		_ = a.Edit(ctx)
	case "logout":
		_ = a.Logout(ctx)
	default:
		printlnFn("Unknown command:", cmd)
	}
}

func dispatchAdmin(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "help":
		printlnFn(helpAdmin)
	case "users":
		_ = a.ListUsers(ctx)
	case "delete":
		if len(args) == 0 {
			printlnFn("Usage: delete <userId>")
			return
		}
		_ = a.DeleteUser(ctx, args[0])
	case "back":
		_ = a.LeaveAdmin(ctx)
	default:
		printlnFn("Unknown command:", cmd)
	}
}
