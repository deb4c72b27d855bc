package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/crossbranch/pkg/cli/config"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestCatalogNew(t *testing.T) {
	ctx := context.Background()

	t.Run("static list", func(t *testing.T) {
		var c config.Catalog
		parseFlags(t, c.Flags(), "--catalog-repo", "web", "--catalog-repo", "api")
		cat, err := c.New(ctx)
		gt.NoError(t, err)

		repos, err := cat.ListRepositories(ctx)
		gt.NoError(t, err)
		gt.A(t, repos).Equal([]types.RepoName{"api", "web"})
	})

	t.Run("manifest file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "repos.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"worker":{},"api":{}}`), 0600))

		var c config.Catalog
		parseFlags(t, c.Flags(), "--catalog-url", "file://"+path)
		cat, err := c.New(ctx)
		gt.NoError(t, err)

		repos, err := cat.ListRepositories(ctx)
		gt.NoError(t, err)
		gt.A(t, repos).Equal([]types.RepoName{"api", "worker"})
	})

	t.Run("nothing configured", func(t *testing.T) {
		var c config.Catalog
		parseFlags(t, c.Flags())
		_, err := c.New(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		var c config.Catalog
		parseFlags(t, c.Flags(), "--catalog-url", "ftp://example.com/repos.json")
		_, err := c.New(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestFirestoreFallback(t *testing.T) {
	var fs config.Firestore
	parseFlags(t, fs.Flags())
	gt.False(t, fs.Enabled())

	repo, err := fs.NewRepository(context.Background())
	gt.NoError(t, err)
	gt.NoError(t, repo.PutToken(context.Background(), "alice", "token"))
}
