package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind is the severity of a message banner.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is one banner.
type Message struct {
	ID        uuid.UUID
	Kind      Kind
	Text      string
	CreatedAt time.Time
}

// MessageCenter keeps a stack of banners. Each banner is printed when shown
// and stays listed until its TTL elapses or it is dismissed.
// It is safe for concurrent use.
type MessageCenter struct {
	mu     sync.Mutex
	out    io.Writer
	styles Styles
	ttl    time.Duration
	now    func() time.Time
	items  []Message
}

func NewMessageCenter(out io.Writer, styles Styles, ttl time.Duration) *MessageCenter {
	return &MessageCenter{out: out, styles: styles, ttl: ttl, now: time.Now}
}

func (m *MessageCenter) Info(text string) Message    { return m.Show(KindInfo, text) }
func (m *MessageCenter) Success(text string) Message { return m.Show(KindSuccess, text) }
func (m *MessageCenter) Error(text string) Message   { return m.Show(KindError, text) }

// Show stacks a new banner and prints it.
func (m *MessageCenter) Show(kind Kind, text string) Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()
	msg := Message{ID: uuid.New(), Kind: kind, Text: text, CreatedAt: m.now()}
	m.items = append(m.items, msg)

	fmt.Fprintln(m.out, m.renderLocked(msg))
	return msg
}

// Active returns the banners that have neither expired nor been dismissed,
// oldest first.
func (m *MessageCenter) Active() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()
	out := make([]Message, len(m.items))
	copy(out, m.items)
	return out
}

// DismissAt removes the n-th active banner, counting from 1.
func (m *MessageCenter) DismissAt(n int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()
	if n < 1 || n > len(m.items) {
		return false
	}
	m.items = append(m.items[:n-1], m.items[n:]...)
	return true
}

// Render lists the active banners, numbered for DismissAt.
func (m *MessageCenter) Render() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()
	if len(m.items) == 0 {
		return m.styles.Muted.Render("no messages")
	}
	lines := make([]string, 0, len(m.items))
	for i, msg := range m.items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, m.renderLocked(msg)))
	}
	return strings.Join(lines, "\n")
}

func (m *MessageCenter) pruneLocked() {
	now := m.now()
	kept := m.items[:0]
	for _, msg := range m.items {
		if now.Sub(msg.CreatedAt) < m.ttl {
			kept = append(kept, msg)
		}
	}
	m.items = kept
}

func (m *MessageCenter) renderLocked(msg Message) string {
	switch msg.Kind {
	case KindSuccess:
		return m.styles.Success.Render("[OK] " + msg.Text)
	case KindError:
		return m.styles.Error.Render("[ERROR] " + msg.Text)
	default:
		return m.styles.Info.Render("[INFO] " + msg.Text)
	}
}
