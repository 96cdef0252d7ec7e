package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/kbase/internal/db"
	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
)

// DefaultRedisKey is the key holding the JSON document snapshot.
const DefaultRedisKey = "kbase:documents"

// Loader produces the initial document collection.
type Loader interface {
	Load(ctx context.Context) ([]domdoc.Document, error)
}

// SampleLoader serves the built-in sample collection.
type SampleLoader struct{}

// Load returns the sample documents.
func (SampleLoader) Load(_ context.Context) ([]domdoc.Document, error) {
	return Sample()
}

// FileLoader reads a YAML or JSON collection file.
type FileLoader struct {
	Path string
}

// Load reads and decodes the collection file.
func (l FileLoader) Load(_ context.Context) ([]domdoc.Document, error) {
	data, err := os.ReadFile(filepath.Clean(l.Path))
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", l.Path, err)
	}
	return decodeCollection(data)
}

// kvReader is the consumer interface for the Redis snapshot (ISP).
type kvReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// RedisLoader reads the JSON snapshot stored under one key.
type RedisLoader struct {
	store kvReader
	key   string
}

// NewRedisLoader creates a loader. An empty key falls back to DefaultRedisKey.
func NewRedisLoader(store kvReader, key string) *RedisLoader {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisLoader{store: store, key: key}
}

// Load fetches and decodes the snapshot.
func (l *RedisLoader) Load(ctx context.Context) ([]domdoc.Document, error) {
	raw, err := l.store.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("snapshot key %q is empty (run kbase-seed first): %w", l.key, err)
		}
		return nil, fmt.Errorf("get %s: %w", l.key, err)
	}
	return decodeCollection(raw)
}

// kvWriter is the consumer interface used by Publish.
type kvWriter interface {
	Set(ctx context.Context, key string, value []byte) error
}

// Publish writes docs as a JSON snapshot readable by RedisLoader.
func Publish(ctx context.Context, store kvWriter, key string, docs []domdoc.Document) error {
	if key == "" {
		key = DefaultRedisKey
	}
	if _, err := New(docs); err != nil {
		return err
	}
	list := make([]docDTO, len(docs))
	for i := range docs {
		list[i] = fromDomain(&docs[i])
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
