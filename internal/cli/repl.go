package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowDay(ctx context.Context, args []string) error
	Check(ctx context.Context, args []string, done bool) error
	Stats(ctx context.Context) error
	Resources(ctx context.Context) error
	Reset(ctx context.Context) error
	Users(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	AddResource(ctx context.Context, args []string) error
}

// runREPL starts the read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while logged out: help, register, login, resources, exit.
// Commands while logged in: day [n], check <n> <task>, uncheck <n> <task>,
// stats, resources, reset, logout, exit; admins additionally get users,
// export [path], import <path>, addresource <category>.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tracker> %s > ", statusFn()))
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
				printlnFn("Available commands: day [n], check <n> <task>, uncheck <n> <task>, stats, resources, reset, logout, exit")
				if a.isAdmin() {
					printlnFn("Admin commands: users, export [path], import <path>, addresource <category>")
				}
			} else {
				printlnFn("Available commands: register, login, resources, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "day":
			_ = a.ShowDay(ctx, args)

		case "check":
			_ = a.Check(ctx, args, true)

		case "uncheck":
			_ = a.Check(ctx, args, false)

		case "stats":
			_ = a.Stats(ctx)

		case "resources":
			_ = a.Resources(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "users":
			_ = a.Users(ctx)

		case "export":
			_ = a.Export(ctx, args)

		case "import":
			_ = a.Import(ctx, args)

		case "addresource":
			_ = a.AddResource(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
