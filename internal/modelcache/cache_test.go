package modelcache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type modelServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newModelServer(t *testing.T, body string) *modelServer {
	t.Helper()
	ms := &modelServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.hits.Add(1)
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		if r.URL.Path != "/pong" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ms.Close)
	return ms
}

func TestGetFetchesOnceThenHits(t *testing.T) {
	t.Parallel()
	srv := newModelServer(t, "weights-v1")
	cache, err := New(t.TempDir(), srv.URL+"/")
	require.NoError(t, err)

	ctx := context.Background()
	data, err := cache.Get(ctx, "pong", 1)
	require.NoError(t, err)
	assert.Equal(t, "weights-v1", string(data))

	data, err = cache.Get(ctx, "pong", 1)
	require.NoError(t, err)
	assert.Equal(t, "weights-v1", string(data))
	assert.Equal(t, int32(1), srv.hits.Load())

	keys, err := cache.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"pong_v1"}, keys)

	size, err := cache.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(len("weights-v1")), size)
}

func TestVersionBumpInvalidates(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	srv := newModelServer(t, "fresh")
	cache, err := New(dir, srv.URL)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pong_v1.bin"), []byte("stale"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other_v1.bin"), []byte("keep"), 0o644))

	data, err := cache.Get(context.Background(), "pong", 2)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))

	keys, err := cache.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"other_v1", "pong_v2"}, keys)
}

func TestConcurrentGetsShareDownload(t *testing.T) {
	t.Parallel()
	srv := newModelServer(t, "shared")
	cache, err := New(t.TempDir(), srv.URL)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := cache.Get(context.Background(), "pong", 3)
			assert.NoError(t, err)
			assert.Equal(t, "shared", string(data))
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, srv.hits.Load(), int32(8))

	keys, err := cache.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"pong_v3"}, keys)
}

func TestCancelledCallerDoesNotFailOthers(t *testing.T) {
	t.Parallel()
	started := make(chan struct{})
	release := make(chan struct{})
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		_, _ = w.Write([]byte("slow"))
	}))
	t.Cleanup(srv.Close)

	cache, err := New(t.TempDir(), srv.URL)
	require.NoError(t, err)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.Get(firstCtx, "pong", 1)
		firstErr <- err
	}()
	<-started

	type result struct {
		data []byte
		err  error
	}
	second := make(chan result, 1)
	go func() {
		data, err := cache.Get(context.Background(), "pong", 1)
		second <- result{data, err}
	}()

	cancelFirst()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "slow", string(res.data))
	assert.Equal(t, int32(1), hits.Load(), "the second caller joined the first download")
}

func TestFetchFailures(t *testing.T) {
	t.Parallel()
	srv := newModelServer(t, "x")
	cache, err := New(t.TempDir(), srv.URL)
	require.NoError(t, err)

	_, err = cache.Get(context.Background(), "missing", 1)
	require.ErrorIs(t, err, ErrFetch)

	_, err = cache.Get(context.Background(), "../etc", 1)
	require.ErrorIs(t, err, ErrInvalidName)

	offline, err := New(t.TempDir(), "")
	require.NoError(t, err)
	_, err = offline.Get(context.Background(), "pong", 1)
	require.ErrorIs(t, err, ErrNotFound)

	keys, err := cache.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestClear(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	srv := newModelServer(t, "bytes")
	cache, err := New(dir, srv.URL)
	require.NoError(t, err)

	_, err = cache.Get(context.Background(), "pong", 1)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	require.NoError(t, cache.Clear())
	keys, err := cache.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = os.Stat(filepath.Join(dir, "notes.txt"))
	assert.NoError(t, err, "non-model files are left alone")

	_, err = cache.Lookup("pong", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
