package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophdemo/internal/client/client"
	"github.com/dmitrijs2005/gophdemo/internal/client/config"
	"github.com/dmitrijs2005/gophdemo/internal/client/models"
	"github.com/dmitrijs2005/gophdemo/internal/client/session"
	"github.com/dmitrijs2005/gophdemo/internal/client/ui"
	"github.com/dmitrijs2005/gophdemo/internal/logging"
)

type fakeClient struct {
	mu sync.Mutex

	statusOut *models.ServerStatus
	statusErr error

	loginOut *models.LoginResult
	loginErr error

	usersOut *models.UserList
	usersErr error

	processOut *models.ProcessResult
	processErr error

	calls []string
}

func (f *fakeClient) record(c string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Status(context.Context) (*models.ServerStatus, error) {
	f.record("status")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusOut, f.statusErr
}

func (f *fakeClient) setStatusErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusErr = err
}

func (f *fakeClient) Login(_ context.Context, u, p string) (*models.LoginResult, error) {
	f.record("login " + u + "/" + p)
	return f.loginOut, f.loginErr
}

func (f *fakeClient) Users(context.Context) (*models.UserList, error) {
	f.record("users")
	return f.usersOut, f.usersErr
}

func (f *fakeClient) ProcessData(_ context.Context, action, data string) (*models.ProcessResult, error) {
	f.record("process " + action + ":" + data)
	return f.processOut, f.processErr
}

func (f *fakeClient) BaseURL() string { return "http://test" }

var errNet = fmt.Errorf("%w: connection refused", client.ErrUnavailable)

func newTestApp(t *testing.T, api *fakeClient) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	styles := ui.DefaultStyles()
	return &App{
		config:   &config.Config{ServerBaseURL: "http://test", MessageTTL: time.Minute},
		api:      api,
		session:  session.NewStore(),
		messages: ui.NewMessageCenter(&out, styles, time.Minute),
		styles:   styles,
		logger:   logging.Discard(),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
		now:      time.Now,
	}, &out
}

func stubInputs(t *testing.T, username, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return username, nil }
	getPassword = func(*bufio.Reader, io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func countKind(msgs []ui.Message, k ui.Kind) int {
	n := 0
	for _, m := range msgs {
		if m.Kind == k {
			n++
		}
	}
	return n
}

func loginAs(t *testing.T, a *App) {
	t.Helper()
	a.session.Set(models.User{ID: 1, Username: "admin", Name: "관리자"}, "", time.Now())
}

func TestLogin_Success(t *testing.T) {
	api := &fakeClient{loginOut: &models.LoginResult{User: models.User{ID: 1, Username: "admin", Name: "관리자"}, Token: "tok"}}
	a, out := newTestApp(t, api)
	stubInputs(t, "admin", "1234")

	require.NoError(t, a.Login(context.Background()))

	u, ok := a.session.Current()
	require.True(t, ok)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "tok", a.session.Token())
	assert.Equal(t, []string{"login admin/1234"}, api.Calls())
	assert.Contains(t, out.String(), "Welcome, 관리자!")
	assert.Contains(t, out.String(), "[INFO] "+msgLoggingIn)
}

func TestLogin_EmptyFieldsNoRequest(t *testing.T) {
	for _, c := range [][2]string{{"", "1234"}, {"admin", ""}, {"", ""}} {
		api := &fakeClient{}
		a, _ := newTestApp(t, api)
		stubInputs(t, c[0], c[1])

		err := a.Login(context.Background())
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Empty(t, api.Calls())
		assert.False(t, a.isLoggedIn())
		assert.Equal(t, 1, countKind(a.messages.Active(), ui.KindError))
	}
}

func TestLogin_RejectedShowsServerMessage(t *testing.T) {
	api := &fakeClient{loginErr: &client.APIError{StatusCode: 401, Message: "Invalid username or password.", Err: client.ErrUnauthorized}}
	a, out := newTestApp(t, api)
	stubInputs(t, "admin", "wrong")

	err := a.Login(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Invalid username or password.")
}

func TestNetworkFailure_OneErrorBannerSessionUnchanged(t *testing.T) {
	flows := map[string]func(a *App) error{
		"login":   func(a *App) error { return a.Login(context.Background()) },
		"process": func(a *App) error { return a.Process(context.Background(), "reverse", "abc") },
		"users":   func(a *App) error { return a.Users(context.Background()) },
		"status":  func(a *App) error { return a.Status(context.Background()) },
	}

	for name, flow := range flows {
		for _, loggedIn := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/loggedIn=%v", name, loggedIn), func(t *testing.T) {
				api := &fakeClient{statusErr: errNet, loginErr: errNet, usersErr: errNet, processErr: errNet}
				a, _ := newTestApp(t, api)
				stubInputs(t, "user1", "pass1")
				if loggedIn {
					loginAs(t, a)
				}
				before, beforeOK := a.session.Current()

				err := flow(a)
				require.Error(t, err)

				after, afterOK := a.session.Current()
				assert.Equal(t, beforeOK, afterOK)
				assert.Equal(t, before, after)
				assert.Equal(t, 1, countKind(a.messages.Active(), ui.KindError))
			})
		}
	}
}

func TestLogout_AlwaysClears(t *testing.T) {
	for _, loggedIn := range []bool{false, true} {
		api := &fakeClient{}
		a, out := newTestApp(t, api)
		if loggedIn {
			a.session.Set(models.User{ID: 1, Username: "admin"}, "tok", time.Now())
		}

		require.NoError(t, a.Logout(context.Background()))

		assert.False(t, a.isLoggedIn())
		assert.Empty(t, a.session.Token())
		assert.Empty(t, api.Calls(), "logout must not call the server")
		assert.Equal(t, []ui.Panel{ui.PanelLogin, ui.PanelStatus}, ui.Panels(a.isLoggedIn()))
		assert.Contains(t, out.String(), msgLoggedOut)
	}
}

func TestProcess_Success(t *testing.T) {
	api := &fakeClient{processOut: &models.ProcessResult{
		Action: "calculate", Input: json.RawMessage(`"5"`), Result: json.RawMessage(`10`), Message: "doubled",
	}}
	a, out := newTestApp(t, api)
	loginAs(t, a)

	require.NoError(t, a.Process(context.Background(), "calculate", "  5 "))
	assert.Equal(t, []string{"process calculate:5"}, api.Calls())
	assert.Contains(t, out.String(), "10")
	assert.Contains(t, out.String(), msgProcessed)
}

func TestProcess_LocalChecks(t *testing.T) {
	api := &fakeClient{}
	a, _ := newTestApp(t, api)
	stubInputs(t, "", "")

	assert.ErrorIs(t, a.Process(context.Background(), "echo", ""), ErrEmptyInput)
	assert.ErrorIs(t, a.Process(context.Background(), "echo", "hi"), ErrNotLoggedIn)
	assert.Empty(t, api.Calls())
}

func TestProcess_PromptsWhenNoData(t *testing.T) {
	api := &fakeClient{processOut: &models.ProcessResult{Action: "reverse"}}
	a, _ := newTestApp(t, api)
	loginAs(t, a)
	stubInputs(t, "typed", "")

	require.NoError(t, a.Process(context.Background(), "reverse", ""))
	assert.Equal(t, []string{"process reverse:typed"}, api.Calls())
}

func TestProcess_ValidationErrorShowsServerMessage(t *testing.T) {
	api := &fakeClient{processErr: &client.APIError{StatusCode: 400, Message: "not a number"}}
	a, out := newTestApp(t, api)
	loginAs(t, a)

	assert.Error(t, a.Process(context.Background(), "calculate", "abc"))
	assert.Contains(t, out.String(), "not a number")
}

func TestUsers(t *testing.T) {
	api := &fakeClient{usersOut: &models.UserList{Users: []models.User{{ID: 1, Username: "admin", Name: "관리자"}}, Total: 1}}
	a, out := newTestApp(t, api)

	assert.ErrorIs(t, a.Users(context.Background()), ErrNotLoggedIn)
	assert.Empty(t, api.Calls())

	loginAs(t, a)
	require.NoError(t, a.Users(context.Background()))
	assert.Contains(t, out.String(), "Users (1)")
	assert.Contains(t, out.String(), fmt.Sprintf(msgUsersLoaded, 1))
}

func TestStatus(t *testing.T) {
	api := &fakeClient{statusOut: &models.ServerStatus{Message: "running"}}
	a, out := newTestApp(t, api)

	require.NoError(t, a.Status(context.Background()))
	assert.Equal(t, ModeOnline, a.getMode())
	assert.Contains(t, out.String(), "running")

	api.setStatusErr(errNet)
	assert.Error(t, a.Status(context.Background()))
	assert.Equal(t, ModeOffline, a.getMode())
	assert.Contains(t, out.String(), "offline")
}

func TestCheckOnline_AnnouncesTransitions(t *testing.T) {
	api := &fakeClient{statusOut: &models.ServerStatus{}}
	a, out := newTestApp(t, api)
	ctx := context.Background()

	a.checkOnline(ctx)
	assert.NotContains(t, out.String(), msgConnectionRestored)

	api.setStatusErr(errNet)
	a.checkOnline(ctx)
	a.checkOnline(ctx)
	assert.Equal(t, 1, strings.Count(out.String(), msgConnectionLost))

	api.setStatusErr(nil)
	a.checkOnline(ctx)
	assert.Equal(t, 1, strings.Count(out.String(), msgConnectionRestored))
}

func TestCheckOnline_OutageReportedOnce(t *testing.T) {
	api := &fakeClient{statusOut: &models.ServerStatus{}}
	a, out := newTestApp(t, api)
	loginAs(t, a)
	ctx := context.Background()

	a.checkOnline(ctx)
	require.Equal(t, ModeOnline, a.getMode())

	api.setStatusErr(errNet)
	api.processErr = errNet
	assert.Error(t, a.Process(ctx, "echo", "hi"))
	a.checkOnline(ctx)

	assert.Equal(t, 1, countKind(a.messages.Active(), ui.KindError))
	assert.NotContains(t, out.String(), msgConnectionLost)
	assert.Equal(t, ModeOffline, a.getMode())

	api.setStatusErr(nil)
	a.checkOnline(ctx)
	assert.Contains(t, out.String(), msgConnectionRestored)
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	api := &fakeClient{statusOut: &models.ServerStatus{}}
	a, _ := newTestApp(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(api.Calls()) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Equal(t, ModeOnline, a.getMode())
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{})
	assert.Equal(t, "", a.getStatus())

	a.setMode(ModeOnline)
	loginAs(t, a)
	assert.Equal(t, "(admin online)", a.getStatus())
}

func TestDismiss(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{})
	a.messages.Info("one")

	a.ShowMessages()
	assert.Contains(t, out.String(), "1. ")

	assert.NoError(t, a.Dismiss(1))
	assert.Error(t, a.Dismiss(1))
}

func TestNewApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	a, err := NewApp(cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", a.api.BaseURL())

	_, err = NewApp(&config.Config{}, logging.Discard())
	assert.Error(t, err)
}

func TestNewApp_ClientSendsSessionToken(t *testing.T) {
	var gotAuth []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"users":[],"total":0}`))
	}))
	t.Cleanup(ts.Close)

	a, err := NewApp(&config.Config{ServerBaseURL: ts.URL}, logging.Discard())
	require.NoError(t, err)
	ctx := context.Background()

	a.session.Set(models.User{ID: 1, Username: "admin"}, "tok", time.Now())
	_, err = a.api.Users(ctx)
	require.NoError(t, err)

	require.NoError(t, a.Logout(ctx))
	_, err = a.api.Users(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer tok", ""}, gotAuth)
}
