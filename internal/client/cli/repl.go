package cli

import (
	"bufio"
	"context"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Posts(ctx context.Context) error
	MyPosts(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	Search(ctx context.Context, query string) error
	Category(ctx context.Context, name string) error
	Tag(ctx context.Context, name string) error
	Dashboard(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the BrainStorm CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// render their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn("bs> " + statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: posts, myposts, add, edit <id>, delete <id>, show <id>, search <query>, category <name>, tag <name>, dashboard, stats, whoami, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, posts, show <id>, search <query>, category <name>, tag <name>, dashboard, stats, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "posts":
			_ = a.Posts(ctx)

		case "myposts":
			_ = a.MyPosts(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "category":
			if len(args) == 0 {
				printlnFn("Usage: category <gaming|development|research>")
				continue
			}
			_ = a.Category(ctx, args[0])

		case "tag":
			if len(args) == 0 {
				printlnFn("Usage: tag <name>")
				continue
			}
			_ = a.Tag(ctx, args[0])

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
