package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestCenter(ttl time.Duration) (*MessageCenter, *bytes.Buffer, *fakeClock) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	mc := NewMessageCenter(&buf, DefaultStyles(), ttl)
	mc.now = clock.Now
	return mc, &buf, clock
}

func TestMessageCenter_ShowPrintsAndStacks(t *testing.T) {
	mc, buf, _ := newTestCenter(5 * time.Second)

	mc.Info("logging in")
	mc.Success("welcome")
	mc.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "[INFO] logging in")
	assert.Contains(t, out, "[OK] welcome")
	assert.Contains(t, out, "[ERROR] boom")
	assert.Equal(t, 3, strings.Count(out, "\n"))

	active := mc.Active()
	require.Len(t, active, 3)
	assert.Equal(t, KindInfo, active[0].Kind)
	assert.Equal(t, KindError, active[2].Kind)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestMessageCenter_Expiry(t *testing.T) {
	mc, _, clock := newTestCenter(5 * time.Second)

	mc.Info("first")
	clock.Advance(3 * time.Second)
	mc.Info("second")

	clock.Advance(2 * time.Second)
	active := mc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Text)

	clock.Advance(3 * time.Second)
	assert.Empty(t, mc.Active())
	assert.Contains(t, mc.Render(), "no messages")
}

func TestMessageCenter_Dismiss(t *testing.T) {
	mc, _, _ := newTestCenter(time.Minute)

	mc.Info("a")
	mc.Info("b")
	mc.Info("c")

	assert.True(t, mc.DismissAt(1))
	assert.True(t, mc.DismissAt(2))
	assert.False(t, mc.DismissAt(0))
	assert.False(t, mc.DismissAt(5))

	active := mc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].Text)
	assert.Contains(t, mc.Render(), "1. ")
}
