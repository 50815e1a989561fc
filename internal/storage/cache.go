package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when CachedBody format changes
const bodyCacheSchemaVersion uint16 = 1

// BodyCache stores full response bodies on disk, keyed by history entry id.
// History entries keep only a short preview inline; the cache lets
// `history show --full` replay the complete body later.
// Thread-safe for concurrent access.
type BodyCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedBody is the serialized cache payload for one response body.
type CachedBody struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	EntryID     string
	Status      int
	ContentType string
	Body        []byte
}

// OpenBodyCache initializes the cache at the standard XDG location.
func OpenBodyCache(app string) (*BodyCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenBodyCacheAt(filepath.Join(base, app))
}

// OpenBodyCacheAt initializes the cache at an explicit directory.
func OpenBodyCacheAt(dir string) (*BodyCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &BodyCache{dir: dir}, nil
}

func (c *BodyCache) pathFor(entryID string) string {
	return filepath.Join(c.dir, "bodies", entryID+".mp")
}

// Put serializes and writes a body payload for a history entry.
func (c *BodyCache) Put(entryID string, payload *CachedBody) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = bodyCacheSchemaVersion

	p := c.pathFor(entryID)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads the cached body for a history entry. A missing or stale-schema
// payload is reported as absent, not as an error.
func (c *BodyCache) Get(entryID string, out *CachedBody) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(entryID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, fmt.Errorf("corrupt cache entry %s: %w", entryID, err)
	}
	if out.Schema != bodyCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *BodyCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return os.RemoveAll(filepath.Join(c.dir, "bodies"))
}
