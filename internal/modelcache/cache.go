// Package modelcache fetches policy model blobs over HTTP and keeps them on
// disk keyed by name and version.
package modelcache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/lox/pongforbots/internal/fileutil"
)

const (
	fileExt = ".bin"

	// MaxModelSize bounds a downloaded blob.
	MaxModelSize = 64 << 20

	DefaultTimeout = 30 * time.Second
)

var (
	ErrNotFound    = errors.New("model not cached")
	ErrInvalidName = errors.New("invalid model name")
	ErrFetch       = errors.New("model fetch failed")
)

// Cache is a directory of model blobs. Concurrent Gets for the same key
// share one download.
type Cache struct {
	dir     string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
	group   singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(cache *Cache) { cache.client = c }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cache *Cache) { cache.logger = l }
}

// New returns a cache in dir that fetches from baseURL. baseURL may be empty
// for a read-only cache.
func New(dir, baseURL string, opts ...Option) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("cache directory is required")
	}
	if baseURL != "" {
		if _, err := url.Parse(baseURL); err != nil {
			return nil, fmt.Errorf("invalid model URL: %w", err)
		}
	}
	c := &Cache{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("component", "modelcache").Logger()
	return c, nil
}

// Key returns the cache key for a model version.
func Key(name string, version int) string {
	return name + "_v" + strconv.Itoa(version)
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+fileExt)
}

// Lookup returns a cached blob without fetching.
func (c *Cache) Lookup(name string, version int) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.path(Key(name, version)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, Key(name, version))
	}
	return data, err
}

// Get returns the blob for name at version, downloading it on a miss. A
// successful download removes older versions of the same model.
func (c *Cache) Get(ctx context.Context, name string, version int) ([]byte, error) {
	data, err := c.Lookup(name, version)
	if err == nil {
		c.logger.Debug().Str("key", Key(name, version)).Msg("Model cache hit")
		return data, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// The shared fetch outlives any one caller; each caller stops waiting
	// when its own ctx ends.
	key := Key(name, version)
	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultTimeout)
		defer cancel()
		return c.fetch(fetchCtx, name, version)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) fetch(ctx context.Context, name string, version int) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: %s and no model URL configured", ErrNotFound, Key(name, version))
	}
	src := c.baseURL + "/" + url.PathEscape(name)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, src, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxModelSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if len(data) > MaxModelSize {
		return nil, fmt.Errorf("%w: model larger than %d bytes", ErrFetch, MaxModelSize)
	}

	key := Key(name, version)
	if err := fileutil.WriteFileAtomic(c.path(key), data, 0o644); err != nil {
		return nil, err
	}
	c.logger.Info().Str("key", key).Int("bytes", len(data)).Dur("took", time.Since(start)).Msg("Model downloaded")

	if err := c.prune(name, version); err != nil {
		c.logger.Warn().Err(err).Str("name", name).Msg("Failed to remove old model versions")
	}
	return data, nil
}

// prune deletes versions of name older than keep.
func (c *Cache) prune(name string, keep int) error {
	entries, err := c.entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.name == name && e.version < keep {
			if err := os.Remove(c.path(e.key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			c.logger.Debug().Str("key", e.key).Msg("Removed old model version")
		}
	}
	return nil
}

type entry struct {
	key     string
	name    string
	version int
	size    int64
}

func (c *Cache) entries() ([]entry, error) {
	dirEntries, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), fileExt) {
			continue
		}
		key := strings.TrimSuffix(de.Name(), fileExt)
		i := strings.LastIndex(key, "_v")
		if i <= 0 {
			continue
		}
		version, err := strconv.Atoi(key[i+2:])
		if err != nil {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		out = append(out, entry{key: key, name: key[:i], version: version, size: info.Size()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out, nil
}

// Keys lists cached models in key order.
func (c *Cache) Keys() ([]string, error) {
	entries, err := c.entries()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys, nil
}

// Size returns the total bytes of cached models.
func (c *Cache) Size() (int64, error) {
	entries, err := c.entries()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, e := range entries {
		total += e.size
	}
	return total, nil
}

// Clear removes every cached model.
func (c *Cache) Clear() error {
	entries, err := c.entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.Remove(c.path(e.key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	c.logger.Info().Int("removed", len(entries)).Msg("Model cache cleared")
	return nil
}
