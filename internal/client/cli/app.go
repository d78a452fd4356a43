package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdemo/internal/client/client"
	"github.com/dmitrijs2005/gophdemo/internal/client/config"
	"github.com/dmitrijs2005/gophdemo/internal/client/session"
	"github.com/dmitrijs2005/gophdemo/internal/client/ui"
	"github.com/dmitrijs2005/gophdemo/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	api      client.Client
	session  *session.Store
	messages *ui.MessageCenter
	styles   ui.Styles
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time

	modeMu sync.Mutex
	mode   Mode
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	if c.ServerBaseURL == "" {
		return nil, fmt.Errorf("server base url is empty")
	}

	styles := ui.DefaultStyles()
	sess := session.NewStore()
	return &App{
		config:   c,
		api:      client.NewHTTPClient(c.ServerBaseURL, nil, sess),
		session:  sess,
		messages: ui.NewMessageCenter(os.Stdout, styles, c.MessageTTL),
		styles:   styles,
		logger:   logger.With("module", "cli"),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}, nil
}

// Run checks the server, starts the connectivity watcher and blocks in the
// REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to gophdemo CLI (type 'help' for commands)")

	_ = a.Status(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// setMode records the connectivity mode and returns the previous one.
func (a *App) setMode(mode Mode) Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	prev := a.mode
	a.mode = mode
	return prev
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// getStatus builds the prompt decoration, e.g. "(admin online)".
func (a *App) getStatus() string {
	s := ""
	if u, ok := a.session.Current(); ok {
		s = u.Username + " "
	}
	if m := a.getMode(); m != ModeUnknown {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the server every interval and announces
// transitions between online and offline. An outage that a command already
// reported is not announced twice. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	_, err := a.api.Status(ctx)
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		if prev := a.setMode(ModeOffline); prev == ModeOnline {
			a.messages.Error(msgConnectionLost)
		}
		return
	}

	if prev := a.setMode(ModeOnline); prev == ModeOffline {
		a.messages.Success(msgConnectionRestored)
	}
}
