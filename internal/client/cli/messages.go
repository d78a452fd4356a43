package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophdemo/internal/client/client"
)

const (
	msgEmptyCredentials   = "Please enter both username and password."
	msgLoggingIn          = "Logging in..."
	msgWelcome            = "Welcome, %s!"
	msgLoggedOut          = "You have been logged out."
	msgUnreachable        = "Cannot reach the server. Make sure the backend is running."
	msgEmptyData          = "Please enter data to process."
	msgLoginFirst         = "Please log in first."
	msgProcessing         = "Processing data..."
	msgProcessed          = "Data processed!"
	msgProcessFailed      = "An error occurred while processing data."
	msgLoadingUsers       = "Loading users..."
	msgUsersLoaded        = "Loaded %d users."
	msgUsersFailed        = "Could not load the user list."
	msgServerUp           = "Server is running normally."
	msgServerDown         = "Cannot connect to the backend server. Please start it."
	msgConnectionRestored = "Connection restored."
	msgConnectionLost     = "Connection lost."
)

var (
	ErrEmptyInput  = errors.New("empty input")
	ErrNotLoggedIn = errors.New("not logged in")
)

// reportError shows exactly one error banner for a failed call: the
// transport message when the server is unreachable, the server's own message
// when it sent one, otherwise fallback. An unreachable server also switches
// the mode to offline, so the watcher does not announce the same outage again.
func (a *App) reportError(ctx context.Context, err error, fallback string) {
	a.logger.Debug(ctx, "request failed", "error", err)

	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		a.messages.Error(msgUnreachable)
	case errors.As(err, &apiErr) && apiErr.Message != "":
		a.messages.Error(apiErr.Message)
	default:
		a.messages.Error(fallback)
	}
}
