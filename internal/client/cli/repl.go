package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Scan(ctx context.Context, args []string) error
	History(ctx context.Context) error
	Status(ctx context.Context) error
	Quota(ctx context.Context, args []string) error
}

// runREPL starts a read–eval–print loop for the CyberShield CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help            — show available commands
//	  - scan <url>      — classify a URL (metered, free quota)
//	  - status          — session, connectivity and quota
//	  - quota [reset]   — remaining free scans / reset the counter
//	  - register        — create an account
//	  - login           — authenticate
//	  - exit | quit     — leave the program
//
//	Logged in, additionally:
//	  - history         — prior scans for this account
//	  - logout          — log out (the free-scan counter is kept)
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cyshield %s> ", statusFn()))
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
				printlnFn("Available commands: scan <url>, history, status, quota, logout, exit")
			} else {
				printlnFn("Available commands: scan <url>, status, quota, register, login, exit")
			}

		case "scan":
			_ = a.Scan(ctx, args)

		case "history":
			_ = a.History(ctx)

		case "status":
			_ = a.Status(ctx)

		case "quota":
			_ = a.Quota(ctx, args)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
