package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (l)ist, show <n>, add, edit, delete, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// Commands that need a session are refused while logged out. Handler
// errors are reported to the user by the handlers themselves.
// The loop exits on EOF, "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "diary %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		if a.isLoggedIn() {
			switch cmd {
			case "l", "list":
				_ = a.List(ctx)
			case "show", "select":
				_ = a.Show(ctx, args)
			case "add":
				_ = a.Add(ctx)
			case "edit":
				_ = a.Edit(ctx)
			case "delete":
				_ = a.Delete(ctx)
			case "logout":
				_ = a.Logout(ctx)
			case "register", "login":
				fmt.Fprintln(w, "Already logged in, use 'logout' first.")
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "l", "list", "show", "select", "add", "edit", "delete", "logout":
			fmt.Fprintln(w, "Please log in first.")
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
