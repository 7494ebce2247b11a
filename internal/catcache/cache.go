// Package catcache keeps extracted catalogs on disk, keyed by the document
// content and the extraction settings.
package catcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"wgslspec/internal/wgsl"
)

// SchemaVersion is bumped whenever Payload or the catalog records change shape.
const SchemaVersion uint16 = 1

// Digest identifies one cache entry.
type Digest [sha256.Size]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Key derives the entry key from the document bytes and the fingerprint of
// the settings that shaped the catalogs.
func Key(document []byte, fingerprint string) Digest {
	h := sha256.New()
	h.Write(document)
	h.Write([]byte{0})
	h.Write([]byte(fingerprint))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Payload is what one entry stores.
type Payload struct {
	Schema    uint16
	Source    string
	CreatedAt time.Time
	Tokens    wgsl.TokenCatalog
	Functions wgsl.FunctionCatalog
}

// Cache stores payloads as msgpack files. Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open prepares a cache rooted at dir.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("cache directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string { return c.dir }

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "catalogs", key.String()+".mp")
}

// Put writes payload under key. The file is replaced atomically.
func (c *Cache) Put(key Digest, payload *Payload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()           //nolint:errcheck
			_ = os.Remove(f.Name()) //nolint:errcheck
		}
	}()

	stored := *payload
	stored.Schema = SchemaVersion
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	if err = msgpack.NewEncoder(f).Encode(&stored); err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the entry for key. Missing entries and entries written with
// another schema version are misses.
func (c *Cache) Get(key Digest) (*Payload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out Payload
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if out.Schema != SchemaVersion {
		return nil, false, nil
	}
	return &out, true, nil
}

// DropAll removes every entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
