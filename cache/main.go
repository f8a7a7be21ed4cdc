package cache

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

type entry struct {
	storedAt time.Time
	value    []byte
}

// Cache is a two-level response cache: an in-memory LRU in front of an
// optional pebble store on disk. Values carry their write time; the TTL
// is supplied per lookup. A concurrent fetch-then-set for the same key is
// a harmless last-write-wins race, both writers store equivalent data.
type Cache struct {
	mem *lru.Cache[string, entry]
	db  *pebble.DB
}

// New opens a cache with the given on-disk path; an empty path disables
// the disk level.
func New(path string, capacity int) (*Cache, error) {
	mem, err := lru.New[string, entry](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}

	c := &Cache{mem: mem}
	if path != "" {
		db, err := pebble.Open(path, &pebble.Options{})
		if err != nil {
			return nil, fmt.Errorf("failed to open cache db: %w", err)
		}
		c.db = db
	}
	return c, nil
}

func cacheKey(name string, key string) string {
	return name + ":" + key
}

// Get looks key up in memory first, then on disk, re-populating the
// memory level on a disk hit. Entries older than ttl are treated as
// absent and dropped.
func (c *Cache) Get(name string, key string, ttl time.Duration) ([]byte, bool) {
	fullKey := cacheKey(name, key)

	if item, ok := c.mem.Get(fullKey); ok {
		if time.Since(item.storedAt) <= ttl {
			return item.value, true
		}
		c.mem.Remove(fullKey)
	}

	value, ok := c.diskGet(fullKey, ttl)
	if !ok {
		return nil, false
	}
	c.mem.Add(fullKey, entry{storedAt: time.Now(), value: value})
	return value, true
}

// Set stores value in both levels.
func (c *Cache) Set(name string, key string, value []byte) error {
	fullKey := cacheKey(name, key)
	c.mem.Add(fullKey, entry{storedAt: time.Now(), value: value})
	return c.diskSet(fullKey, value)
}

func (c *Cache) diskGet(fullKey string, ttl time.Duration) ([]byte, bool) {
	if c.db == nil {
		return nil, false
	}
	raw, closer, err := c.db.Get([]byte(fullKey))
	if err != nil {
		return nil, false
	}
	defer closer.Close()

	if len(raw) < 8 {
		return nil, false
	}
	storedAt := time.UnixMilli(int64(binary.BigEndian.Uint64(raw[:8])))
	if time.Since(storedAt) > ttl {
		if err := c.db.Delete([]byte(fullKey), pebble.NoSync); err != nil {
			zap.S().Warnf("failed to delete expired cache entry: %v", err)
		}
		return nil, false
	}

	value := make([]byte, len(raw)-8)
	copy(value, raw[8:])
	return value, true
}

func (c *Cache) diskSet(fullKey string, value []byte) error {
	if c.db == nil {
		return nil
	}
	raw := make([]byte, 8+len(value))
	binary.BigEndian.PutUint64(raw[:8], uint64(time.Now().UnixMilli()))
	copy(raw[8:], value)
	if err := c.db.Set([]byte(fullKey), raw, pebble.NoSync); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
