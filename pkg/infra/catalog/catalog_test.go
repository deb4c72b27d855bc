package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/infra/catalog"
	"github.com/m-mizutani/crossbranch/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

type fakeSource struct {
	mu    sync.Mutex
	data  []byte
	err   error
	calls int
}

func (x *fakeSource) Load(ctx context.Context) ([]byte, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.calls++
	return x.data, x.err
}

func (x *fakeSource) set(data string, err error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.data = []byte(data)
	x.err = err
}

func TestParseManifest(t *testing.T) {
	t.Run("keys are sorted", func(t *testing.T) {
		repos, err := catalog.ParseManifest([]byte(`{"web": {"team": "x"}, "api": 1, "batch": null}`))
		gt.NoError(t, err)
		gt.V(t, repos).Equal([]types.RepoName{"api", "batch", "web"})
	})

	t.Run("empty object", func(t *testing.T) {
		repos, err := catalog.ParseManifest([]byte(`{}`))
		gt.NoError(t, err)
		gt.V(t, len(repos)).Equal(0)
	})

	t.Run("array is rejected", func(t *testing.T) {
		_, err := catalog.ParseManifest([]byte(`["api"]`))
		gt.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	_, err := catalog.New()
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestStatic(t *testing.T) {
	c, err := catalog.New(catalog.WithStatic([]types.RepoName{"web", "api", "", "web"}))
	gt.NoError(t, err)

	repos, err := c.ListRepositories(context.Background())
	gt.NoError(t, err)
	gt.V(t, repos).Equal([]types.RepoName{"api", "web"})
}

func TestManifestCache(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewClock(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	newCatalog := func(t *testing.T, src *fakeSource) *catalog.Catalog {
		c, err := catalog.New(
			catalog.WithSource(src),
			catalog.WithStatic([]types.RepoName{"ignored"}),
			catalog.WithTTL(time.Minute),
			catalog.WithClock(clock.Now),
		)
		gt.NoError(t, err)
		return c
	}

	t.Run("serves cached list within TTL", func(t *testing.T) {
		src := &fakeSource{}
		src.set(`{"b": 1, "a": 1}`, nil)
		c := newCatalog(t, src)

		repos, err := c.ListRepositories(ctx)
		gt.NoError(t, err)
		gt.V(t, repos).Equal([]types.RepoName{"a", "b"})

		src.set(`{"c": 1}`, nil)
		clock.Advance(59 * time.Second)
		repos, err = c.ListRepositories(ctx)
		gt.NoError(t, err)
		gt.V(t, repos).Equal([]types.RepoName{"a", "b"})
		gt.V(t, src.calls).Equal(1)

		clock.Advance(time.Second)
		repos, err = c.ListRepositories(ctx)
		gt.NoError(t, err)
		gt.V(t, repos).Equal([]types.RepoName{"c"})
		gt.V(t, src.calls).Equal(2)
	})

	t.Run("refresh failure is not served stale", func(t *testing.T) {
		src := &fakeSource{}
		src.set(`{"a": 1}`, nil)
		c := newCatalog(t, src)

		_, err := c.ListRepositories(ctx)
		gt.NoError(t, err)

		src.set("", errors.New("connection refused"))
		clock.Advance(2 * time.Minute)
		_, err = c.ListRepositories(ctx)
		gt.True(t, errors.Is(err, types.ErrCatalogUnavailable))
	})

	t.Run("empty after non-empty fails", func(t *testing.T) {
		src := &fakeSource{}
		src.set(`{"a": 1}`, nil)
		c := newCatalog(t, src)

		_, err := c.ListRepositories(ctx)
		gt.NoError(t, err)

		src.set(`{}`, nil)
		clock.Advance(2 * time.Minute)
		_, err = c.ListRepositories(ctx)
		gt.True(t, errors.Is(err, types.ErrCatalogUnavailable))
	})

	t.Run("malformed manifest fails", func(t *testing.T) {
		src := &fakeSource{}
		src.set(`not json`, nil)
		c := newCatalog(t, src)

		_, err := c.ListRepositories(ctx)
		gt.True(t, errors.Is(err, types.ErrCatalogUnavailable))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		src := &fakeSource{}
		src.set(`{"a": 1}`, nil)
		c := newCatalog(t, src)

		repos, err := c.ListRepositories(ctx)
		gt.NoError(t, err)
		repos[0] = "mutated"

		repos, err = c.ListRepositories(ctx)
		gt.NoError(t, err)
		gt.V(t, repos[0]).Equal(types.RepoName("a"))
	})
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"web": {}, "api": {}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	ctx := context.Background()

	t.Run("fetches manifest", func(t *testing.T) {
		src, err := catalog.NewSource(ctx, srv.URL+"/repos.json", srv.Client())
		gt.NoError(t, err)

		c, err := catalog.New(catalog.WithSource(src))
		gt.NoError(t, err)
		repos, err := c.ListRepositories(ctx)
		gt.NoError(t, err)
		gt.V(t, repos).Equal([]types.RepoName{"api", "web"})
	})

	t.Run("server error is catalog unavailable", func(t *testing.T) {
		c, err := catalog.New(catalog.WithSource(catalog.NewHTTPSource(srv.Client(), srv.URL+"/broken")))
		gt.NoError(t, err)
		_, err = c.ListRepositories(ctx)
		gt.True(t, errors.Is(err, types.ErrCatalogUnavailable))
	})
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.json")
	gt.NoError(t, os.WriteFile(path, []byte(`{"infra": true}`), 0600))

	src, err := catalog.NewSource(context.Background(), "file://"+path, nil)
	gt.NoError(t, err)

	data, err := src.Load(context.Background())
	gt.NoError(t, err)
	repos, err := catalog.ParseManifest(data)
	gt.NoError(t, err)
	gt.V(t, repos).Equal([]types.RepoName{"infra"})
}

func TestNewSource(t *testing.T) {
	ctx := context.Background()

	_, err := catalog.NewSource(ctx, "ftp://example.com/repos.json", nil)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = catalog.NewSource(ctx, "gs://bucket-only", nil)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestGCSSource(t *testing.T) {
	manifestURL := testutil.GetEnvOrSkip(t, "TEST_CATALOG_GCS_URL")

	ctx := context.Background()
	src, err := catalog.NewSource(ctx, manifestURL, nil)
	gt.NoError(t, err)

	c, err := catalog.New(catalog.WithSource(src))
	gt.NoError(t, err)
	repos, err := c.ListRepositories(ctx)
	gt.NoError(t, err)
	gt.True(t, len(repos) > 0)
}
