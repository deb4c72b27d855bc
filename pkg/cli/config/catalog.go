package config

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/infra/catalog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Catalog struct {
	url   string
	repos []string
	ttl   time.Duration
}

func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog-url",
			Usage:       "Repository manifest location (https://, gs://bucket/object or file://)",
			Category:    "Catalog",
			Destination: &x.url,
			Sources:     cli.EnvVars("CROSSBRANCH_CATALOG_URL"),
		},
		&cli.StringSliceFlag{
			Name:        "catalog-repo",
			Usage:       "Static repository list, used when no manifest URL is set",
			Category:    "Catalog",
			Destination: &x.repos,
			Sources:     cli.EnvVars("CROSSBRANCH_CATALOG_REPOS"),
		},
		&cli.DurationFlag{
			Name:        "catalog-ttl",
			Usage:       "How long a fetched manifest is served from cache",
			Category:    "Catalog",
			Value:       catalog.DefaultTTL,
			Destination: &x.ttl,
			Sources:     cli.EnvVars("CROSSBRANCH_CATALOG_TTL"),
		},
	}
}

func (x Catalog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", x.url),
		slog.Any("repos", x.repos),
		slog.Duration("ttl", x.ttl),
	)
}

func (x *Catalog) New(ctx context.Context) (*catalog.Catalog, error) {
	options := []catalog.Option{
		catalog.WithTTL(x.ttl),
	}

	switch {
	case x.url != "":
		src, err := catalog.NewSource(ctx, x.url, http.DefaultClient)
		if err != nil {
			return nil, err
		}
		options = append(options, catalog.WithSource(src))

	case len(x.repos) > 0:
		repos := make([]types.RepoName, len(x.repos))
		for i, r := range x.repos {
			repos[i] = types.RepoName(r)
		}
		options = append(options, catalog.WithStatic(repos))

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "either --catalog-url or --catalog-repo is required")
	}

	return catalog.New(options...)
}
