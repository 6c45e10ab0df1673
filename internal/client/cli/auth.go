package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printError(err)
		return
	}

	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		a.printError(err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.printError(err)
		return
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	session, err := a.client.Register(ctx, email, password, name)
	if err != nil {
		a.printError(err)
		return
	}

	a.session = session
	fmt.Fprintf(a.out, "Registered %s (id %s)\n", session.User.Email, session.User.ID)
}

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printError(err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.printError(err)
		return
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	session, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.printError(err)
		return
	}

	a.session = session
	fmt.Fprintf(a.out, "Welcome, %s!\n", session.User.Name)
}

// Verify checks the current token and replaces it with the refreshed one.
// A rejected token ends the session.
func (a *App) Verify(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	session, err := a.client.VerifyToken(ctx, a.session.Token)
	if err != nil {
		a.session = nil
		a.printError(err)
		return
	}

	a.session = session
	fmt.Fprintln(a.out, "Token is valid, refreshed")
}

func (a *App) whoami() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	u := a.session.User
	fmt.Fprintf(a.out, "%s <%s> id=%s\n", u.Name, u.Email, u.ID)
}

func (a *App) Ping(ctx context.Context) {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.printError(err)
		return
	}
	fmt.Fprintln(a.out, "Server is online")
}
