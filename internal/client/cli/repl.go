package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Process(ctx context.Context, action, data string) error
	Users(ctx context.Context) error
	Status(ctx context.Context) error
	ShowPanels()
	ShowMessages()
	Dismiss(n int) error
}

const (
	helpLoggedOut = "Available commands: login, status, panels, messages, dismiss <n>, help, exit"
	helpLoggedIn  = "Available commands: calc <n>, reverse <text>, echo <text>, process <action> <data>, users, logout, status, panels, messages, dismiss <n>, help, exit\nAny other line is echoed through the server."
)

// runREPL starts a simple read–eval–print loop for the gophdemo CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. A line that is not a command is sent as
// echo data. The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers surface
// their own failures as message banners.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("demo %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "calc", "calculate":
			_ = a.Process(ctx, "calculate", rest)

		case "reverse":
			_ = a.Process(ctx, "reverse", rest)

		case "echo":
			_ = a.Process(ctx, "echo", rest)

		case "process":
			if len(parts) < 2 {
				printlnFn("Usage: process <action> <data>")
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(rest, parts[1]))
			_ = a.Process(ctx, parts[1], data)

		case "users":
			_ = a.Users(ctx)

		case "status":
			_ = a.Status(ctx)

		case "panels":
			a.ShowPanels()

		case "messages":
			a.ShowMessages()

		case "dismiss":
			n, err := strconv.Atoi(rest)
			if err != nil {
				printlnFn("Usage: dismiss <n>")
				continue
			}
			if err := a.Dismiss(n); err != nil {
				printlnFn(err.Error())
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			_ = a.Process(ctx, "echo", line)
		}
	}
}
