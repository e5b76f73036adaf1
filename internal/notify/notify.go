// Package notify holds the transient toast queue shown to the user.
//
// Every toast owns its own expiry timer. Dismissing a toast or closing the
// center stops the timers it owns, so nothing fires after teardown.
package notify

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// ParseSeverity maps loose input to a Severity, defaulting to success.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "destructive":
		return SeverityError
	case "info", "warning":
		return SeverityInfo
	default:
		return SeveritySuccess
	}
}

// Toast is one visible notification. IDs are unix millis, bumped to stay
// strictly increasing.
type Toast struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type entry struct {
	toast Toast
	timer *time.Timer
}

type Option func(*Center)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Center) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now for ID and timestamp generation.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// Center is the toast queue.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	lastID  int64
	entries []*entry
	closed  bool
}

func NewCenter(opts ...Option) *Center {
	c := &Center{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enqueue shows a toast and schedules its removal. An empty severity is
// treated as success. It returns 0 once the center is closed.
func (c *Center) Enqueue(message string, severity Severity) int64 {
	if severity == "" {
		severity = SeveritySuccess
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0
	}

	now := c.now()
	id := now.UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id

	e := &entry{toast: Toast{ID: id, Message: message, Severity: severity, CreatedAt: now}}
	e.timer = time.AfterFunc(c.ttl, func() { c.expire(id) })
	c.entries = append(c.entries, e)
	return id
}

func (c *Center) expire(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remove(id)
}

// remove drops the toast and stops its timer. Callers hold mu.
func (c *Center) remove(id int64) bool {
	for i, e := range c.entries {
		if e.toast.ID == id {
			e.timer.Stop()
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Dismiss removes a toast before it expires.
func (c *Center) Dismiss(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.remove(id)
}

// Visible returns the current toasts, oldest first.
func (c *Center) Visible() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Toast, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.toast
	}
	return out
}

// Close stops every pending timer and drops all toasts.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		e.timer.Stop()
	}
	c.entries = nil
	c.closed = true
}
