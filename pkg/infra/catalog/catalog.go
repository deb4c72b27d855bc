package catalog

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const DefaultTTL = time.Minute

// Catalog lists the repositories of the organization. With a manifest source
// the list is cached for ttl. A failed refresh is an error, never a stale or
// shrunk-to-empty list.
type Catalog struct {
	source Source
	static []types.RepoName
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	repos     []types.RepoName
	fetchedAt time.Time
	loaded    bool
}

var _ interfaces.Catalog = (*Catalog)(nil)

type Option func(*Catalog)

func WithSource(src Source) Option {
	return func(x *Catalog) {
		x.source = src
	}
}

// WithStatic sets a fixed repository list. It is used only when no source is
// configured.
func WithStatic(repos []types.RepoName) Option {
	return func(x *Catalog) {
		x.static = repos
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(x *Catalog) {
		x.ttl = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(x *Catalog) {
		x.now = now
	}
}

func New(options ...Option) (*Catalog, error) {
	x := &Catalog{
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range options {
		opt(x)
	}

	if x.source == nil && len(x.static) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "either a manifest source or a static repository list is required")
	}

	if x.source == nil {
		x.static = normalize(x.static)
	}
	return x, nil
}

func (x *Catalog) ListRepositories(ctx context.Context) ([]types.RepoName, error) {
	if x.source == nil {
		return clone(x.static), nil
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	now := x.now()
	if x.loaded && now.Sub(x.fetchedAt) < x.ttl {
		return clone(x.repos), nil
	}

	data, err := x.source.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCatalogUnavailable, "failed to load manifest", goerr.V("cause", err.Error()))
	}
	repos, err := ParseManifest(data)
	if err != nil {
		return nil, goerr.Wrap(types.ErrCatalogUnavailable, "failed to parse manifest", goerr.V("cause", err.Error()))
	}
	if len(repos) == 0 && len(x.repos) > 0 {
		return nil, goerr.Wrap(types.ErrCatalogUnavailable, "manifest became empty",
			goerr.V("previous", len(x.repos)),
		)
	}

	logging.From(ctx).Debug("repository catalog refreshed", slog.Int("count", len(repos)))

	x.repos = repos
	x.fetchedAt = now
	x.loaded = true
	return clone(repos), nil
}

func normalize(repos []types.RepoName) []types.RepoName {
	seen := make(map[types.RepoName]struct{}, len(repos))
	out := make([]types.RepoName, 0, len(repos))
	for _, r := range repos {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func clone(repos []types.RepoName) []types.RepoName {
	out := make([]types.RepoName, len(repos))
	copy(out, repos)
	return out
}
