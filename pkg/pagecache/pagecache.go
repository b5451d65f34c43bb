// Package pagecache caches rendered profile pages with thundering herd prevention.
package pagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/codeGROOVE-dev/sfcache"
	"github.com/codeGROOVE-dev/sfcache/pkg/persist/localfs"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/null"
)

// DefaultTTL is how long a rendered section stays fresh.
const DefaultTTL = 24 * time.Hour

// Stats tracks cache hit/miss statistics.
type Stats struct {
	Hits   int64
	Misses int64
}

var globalStats atomic.Pointer[Stats]

func init() {
	globalStats.Store(&Stats{})
}

// CacheStats returns the current cache statistics.
func CacheStats() Stats {
	return *globalStats.Load()
}

// ResetStats resets the cache statistics.
func ResetStats() {
	globalStats.Store(&Stats{})
}

func record(hit bool) {
	for {
		old := globalStats.Load()
		updated := &Stats{Hits: old.Hits, Misses: old.Misses}
		if hit {
			updated.Hits++
		} else {
			updated.Misses++
		}
		if globalStats.CompareAndSwap(old, updated) {
			return
		}
	}
}

// Cacher allows external cache implementations.
type Cacher interface {
	GetSet(ctx context.Context, key string, fetch func(context.Context) ([]byte, error), ttl ...time.Duration) ([]byte, error)
	TTL() time.Duration
}

// Cache wraps sfcache for rendered page markup.
type Cache struct {
	*sfcache.TieredCache[string, []byte]

	ttl time.Duration
}

// New creates a Cache with disk persistence under the user cache directory.
func New(ttl time.Duration) (*Cache, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return NewWithPath(ttl, filepath.Join(cacheDir, "liprofile"))
}

// NewNull creates a Cache with no persistence.
func NewNull() *Cache {
	tc, err := sfcache.NewTiered[string, []byte](null.New[string, []byte]())
	if err != nil {
		panic("sfcache.NewTiered with null store: " + err.Error())
	}
	return &Cache{TieredCache: tc, ttl: 0}
}

// NewWithPath creates a Cache with disk persistence at cachePath.
func NewWithPath(ttl time.Duration, cachePath string) (*Cache, error) {
	if err := os.MkdirAll(cachePath, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	persist, err := localfs.New[string, []byte]("liprofile", cachePath)
	if err != nil {
		return nil, fmt.Errorf("create persistence layer: %w", err)
	}

	tc, err := sfcache.NewTiered[string, []byte](persist, sfcache.TTL(ttl))
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &Cache{TieredCache: tc, ttl: ttl}, nil
}

// TTL returns the default TTL for cache entries.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Key returns the cache key for one section of one profile.
// Profile IDs are case-insensitive on LinkedIn, so they are folded.
func Key(profileID, section string) string {
	hash := sha256.Sum256([]byte("linkedin:" + strings.ToLower(profileID) + ":" + section))
	return hex.EncodeToString(hash[:])
}

// Validator reports whether rendered markup is worth caching.
type Validator func(body []byte) bool

// NonEmpty refuses to cache blank renders.
func NonEmpty(body []byte) bool {
	return len(strings.TrimSpace(string(body))) > 0
}

// Fetch returns the cached value for key, calling fetch on a miss.
// Concurrent callers for one key share a single fetch. A nil cache always fetches.
// Errors from fetch are returned and never cached; a body rejected by validator
// is returned but not cached.
func Fetch(
	ctx context.Context,
	cache Cacher,
	key string,
	fetch func(context.Context) ([]byte, error),
	validator Validator,
	logger *slog.Logger,
) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cache == nil {
		record(false)
		return fetch(ctx)
	}

	var wasFetched bool
	data, err := cache.GetSet(ctx, key, func(ctx context.Context) ([]byte, error) {
		wasFetched = true
		record(false)
		logger.DebugContext(ctx, "page cache miss", "key", key)
		body, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if validator != nil && !validator(body) {
			logger.DebugContext(ctx, "skipping cache due to validation failure", "key", key)
			return nil, &validationError{data: body}
		}
		return body, nil
	}, cache.TTL())

	if !wasFetched {
		record(true)
		logger.DebugContext(ctx, "page cache hit", "key", key)
	}

	var validErr *validationError
	if errors.As(err, &validErr) {
		return validErr.data, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

type validationError struct{ data []byte }

func (*validationError) Error() string { return "validation failed" }
