package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
)

// ErrCorrupt marks stored data that exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt history data")

// Store persists the whole history list under StorageKey.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// NewStore picks the backend named in the configuration.
func NewStore(conf *config.Config, logger zerolog.Logger) (Store, error) {
	switch conf.History.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		opts, err := redis.ParseURL(conf.History.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return NewRedisStore(redis.NewClient(opts)), nil
	case "file", "":
		return NewFileStore(conf.History.FilePath)
	default:
		return nil, fmt.Errorf("unknown history backend %q", conf.History.Backend)
	}
}

func decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return entries, nil
}

// MemoryStore keeps the encoded list in a map, mostly for tests and
// ephemeral deployments.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context) ([]Entry, error) {
	m.mu.Lock()
	raw, ok := m.data[StorageKey]
	m.mu.Unlock()

	if !ok {
		return nil, nil
	}
	return decode(raw)
}

func (m *MemoryStore) Save(_ context.Context, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data[StorageKey] = raw
	m.mu.Unlock()
	return nil
}

// Put stores raw bytes under the history key.
func (m *MemoryStore) Put(raw []byte) {
	m.mu.Lock()
	m.data[StorageKey] = raw
	m.mu.Unlock()
}

// RedisStore keeps the list as a JSON string value.
type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

func (r *RedisStore) Load(ctx context.Context) ([]Entry, error) {
	raw, err := r.redis.Get(ctx, StorageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decode(raw)
}

func (r *RedisStore) Save(ctx context.Context, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, StorageKey, raw, 0).Err()
}

func (r *RedisStore) Close() error {
	return r.redis.Close()
}
