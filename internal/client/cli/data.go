package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdemo/internal/client/ui"
)

// Process sends data to /api/process-data with the given action. When data
// is empty the user is prompted for it. Empty input and a missing session
// are rejected locally.
func (a *App) Process(ctx context.Context, action, data string) error {
	data = strings.TrimSpace(data)
	if data == "" {
		text, err := getSimpleText(a.reader, "Enter data to process", a.out)
		if err != nil {
			return err
		}
		data = text
	}

	if data == "" {
		a.messages.Error(msgEmptyData)
		return ErrEmptyInput
	}
	if !a.isLoggedIn() {
		a.messages.Error(msgLoginFirst)
		return ErrNotLoggedIn
	}

	a.messages.Info(msgProcessing)
	a.logger.Debug(ctx, "process data", "action", action)

	res, err := a.api.ProcessData(ctx, action, data)
	if err != nil {
		a.reportError(ctx, err, msgProcessFailed)
		return err
	}

	a.messages.Success(msgProcessed)
	a.println(ui.ResultCard(a.styles, res))
	return nil
}

// Users fetches and renders the user list. It needs a session.
func (a *App) Users(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.messages.Error(msgLoginFirst)
		return ErrNotLoggedIn
	}

	a.messages.Info(msgLoadingUsers)

	list, err := a.api.Users(ctx)
	if err != nil {
		a.reportError(ctx, err, msgUsersFailed)
		return err
	}

	a.println(ui.UsersCard(a.styles, list.Users))
	a.messages.Success(fmt.Sprintf(msgUsersLoaded, list.Total))
	return nil
}

// Status pings the server and renders the online or offline card.
func (a *App) Status(ctx context.Context) error {
	st, err := a.api.Status(ctx)
	checked := a.now()

	if err != nil {
		a.setMode(ModeOffline)
		a.println(ui.StatusCard(a.styles, nil, false, checked, a.api.BaseURL()))
		a.logger.Debug(ctx, "status failed", "error", err)
		a.messages.Error(msgServerDown)
		return err
	}

	a.setMode(ModeOnline)
	a.println(ui.StatusCard(a.styles, st, true, checked, a.api.BaseURL()))
	a.messages.Success(msgServerUp)
	return nil
}

// ShowPanels prints the panels visible in the current session state.
func (a *App) ShowPanels() {
	a.println(ui.RenderPanels(a.styles, a.isLoggedIn()))
}

// ShowMessages prints the active banners, numbered for Dismiss.
func (a *App) ShowMessages() {
	a.println(a.messages.Render())
}

// Dismiss removes the n-th active banner.
func (a *App) Dismiss(n int) error {
	if !a.messages.DismissAt(n) {
		return fmt.Errorf("no message #%d", n)
	}
	return nil
}
