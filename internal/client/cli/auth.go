package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdemo/internal/client/ui"
)

// Login prompts for username and password and authenticates against the
// server.
//
// Empty fields are rejected locally with an error banner and no request.
// On success the session slot is filled with the user and the bearer token
// (if the server issued one), and the user card is shown.
// On any failure exactly one error banner is shown and the session is left
// as it was.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if username == "" || password == "" {
		a.messages.Error(msgEmptyCredentials)
		return ErrEmptyInput
	}

	a.messages.Info(msgLoggingIn)
	a.logger.Debug(ctx, "login", "username", username)

	res, err := a.api.Login(ctx, username, password)
	if err != nil {
		a.reportError(ctx, err, err.Error())
		return err
	}

	a.session.Set(res.User, res.Token, a.now())
	a.setMode(ModeOnline)

	a.messages.Success(fmt.Sprintf(msgWelcome, res.User.Name))
	a.println(ui.UserCard(a.styles, res.User, a.session.LoggedInAt()))
	return nil
}

// Logout clears the session slot, which also drops the bearer token. It never
// talks to the server and always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Clear()
	a.messages.Info(msgLoggedOut)
	a.println(ui.RenderPanels(a.styles, false))
	return nil
}
