package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/authrpc"
)

func (a *App) prompt() string {
	if a.isLoggedIn() {
		return fmt.Sprintf("gophauth (%s)> ", a.session.User.Email)
	}
	return "gophauth> "
}

// Root runs the command loop until exit or end of input.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to gophauth CLI (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, a.prompt())

		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			fmt.Fprintln(a.out, "Available commands: register, login, verify, whoami, ping, exit")
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "verify":
			a.Verify(ctx)
		case "whoami":
			a.whoami()
		case "ping":
			a.Ping(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", parts[0])
		}
	}
}

// printError shows service errors with their status code.
func (a *App) printError(err error) {
	var e *authrpc.Error
	if errors.As(err, &e) {
		fmt.Fprintf(a.out, "Error %d: %s\n", e.Status, e.Message)
		return
	}
	fmt.Fprintln(a.out, err.Error())
}
