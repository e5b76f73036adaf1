// Package history keeps the short list of recently exported contents.
package history

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// MaxEntries is how many exports are remembered.
	MaxEntries = 5
	// StorageKey is the single key every backend persists under.
	StorageKey = "qrstudio.history"
)

// Entry is one successful export.
type Entry struct {
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // unix millis
}

// Prepend returns a new list with e first, truncated to MaxEntries.
// The input slice is not modified.
func Prepend(list []Entry, e Entry) []Entry {
	out := make([]Entry, 0, MaxEntries)
	out = append(out, e)
	for _, old := range list {
		if len(out) == MaxEntries {
			break
		}
		out = append(out, old)
	}
	return out
}

// Log is the in-memory history backed by a Store.
type Log struct {
	mu      sync.RWMutex
	store   Store
	logger  zerolog.Logger
	entries []Entry
}

func NewLog(store Store, logger zerolog.Logger) *Log {
	return &Log{
		store:  store,
		logger: logger.With().Str("component", "history").Logger(),
	}
}

// Load reads the persisted history once at startup. Unreadable or corrupt
// data leaves the history empty; the problem is logged, not returned.
func (l *Log) Load(ctx context.Context) {
	entries, err := l.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			l.logger.Warn().Err(err).Msg("stored history is unreadable, starting empty")
		} else {
			l.logger.Error().Err(err).Msg("failed to load history, starting empty")
		}
		entries = nil
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()
}

// Add records content stamped at as the newest entry and persists the list. The
// in-memory list is updated even if persisting fails.
func (l *Log) Add(ctx context.Context, content string, at time.Time) ([]Entry, error) {
	l.mu.Lock()
	l.entries = Prepend(l.entries, Entry{Content: content, Timestamp: at.UnixMilli()})
	snapshot := append([]Entry(nil), l.entries...)
	l.mu.Unlock()

	if err := l.store.Save(ctx, snapshot); err != nil {
		return snapshot, err
	}
	return snapshot, nil
}

// Entries returns a copy, newest first.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]Entry(nil), l.entries...)
}
