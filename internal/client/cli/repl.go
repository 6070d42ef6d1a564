package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Feed(ctx context.Context) error
	Post(ctx context.Context) error
	Ride(ctx context.Context) error
	RideStatus(ctx context.Context, args []string) error
	Propose(ctx context.Context) error
	Proposals(ctx context.Context) error
	Health(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, health, help, exit"
	helpLoggedIn  = "Available commands: feed, post, ride, ridestatus <id>, propose, proposals, whoami, health, logout, help, exit"
)

// needsLogin lists the commands that only make sense with a session.
var needsLogin = map[string]struct{}{
	"feed": {}, "post": {}, "ride": {}, "ridestatus": {},
	"propose": {}, "proposals": {}, "whoami": {}, "logout": {},
}

// runREPL starts a simple read-eval-print loop for the SuperApp CLI.
//
// Before each prompt it asks loginPending whether the gateway forced a
// navigation to login; if so the login prompt is shown first. It then reads
// a line, parses the first token as the command, and dispatches to methods
// on 'a'. Command errors are printed and the loop continues. The loop exits
// on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, loginPending func() bool, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		if loginPending() {
			printlnFn("Redirecting to login...")
			report(a.Login(ctx))
		}

		printlnFn(fmt.Sprintf("superapp %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if _, ok := needsLogin[cmd]; ok && !a.isLoggedIn() {
			printlnFn("Not logged in. Use 'login' or 'register' first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			report(a.Register(ctx))
		case "login":
			report(a.Login(ctx))
		case "logout":
			report(a.Logout(ctx))
		case "whoami":
			report(a.Whoami(ctx))
		case "feed":
			report(a.Feed(ctx))
		case "post":
			report(a.Post(ctx))
		case "ride":
			report(a.Ride(ctx))
		case "ridestatus":
			report(a.RideStatus(ctx, args))
		case "propose":
			report(a.Propose(ctx))
		case "proposals":
			report(a.Proposals(ctx))
		case "health":
			report(a.Health(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
