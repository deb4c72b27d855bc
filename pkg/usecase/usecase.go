package usecase

import (
	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/infra"
	"github.com/m-mizutani/crossbranch/pkg/utils/dedup"
	"github.com/m-mizutani/crossbranch/pkg/utils/retry"
)

const (
	DefaultConcurrency = 8
	DefaultMergeMethod = types.MergeMethodSquash
)

type UseCase struct {
	clients *infra.Clients

	requiredChecks []string
	concurrency    int
	mergeMethod    types.MergeMethod
	retry          retry.Options
	badge          *model.BuildBadge

	// Independent suppression windows for the opened and merged webhook paths.
	openedCache *dedup.Cache
	mergedCache *dedup.Cache
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithRequiredChecks sets the status contexts that must succeed for a branch
// to be mergeable.
func WithRequiredChecks(checks []string) Option {
	return func(x *UseCase) {
		x.requiredChecks = checks
	}
}

// WithConcurrency bounds the number of repositories processed at once by
// aggregation and concurrent batch operations.
func WithConcurrency(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.concurrency = n
		}
	}
}

func WithMergeMethod(method types.MergeMethod) Option {
	return func(x *UseCase) {
		if method != "" {
			x.mergeMethod = method
		}
	}
}

func WithRetryOptions(opts retry.Options) Option {
	return func(x *UseCase) {
		x.retry = opts
	}
}

func WithBuildBadge(badge *model.BuildBadge) Option {
	return func(x *UseCase) {
		x.badge = badge
	}
}

func WithDedupCaches(opened, merged *dedup.Cache) Option {
	return func(x *UseCase) {
		x.openedCache = opened
		x.mergedCache = merged
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	x := &UseCase{
		clients:     clients,
		concurrency: DefaultConcurrency,
		mergeMethod: DefaultMergeMethod,
		retry:       retry.DefaultOptions(),
	}
	for _, opt := range options {
		opt(x)
	}

	if x.openedCache == nil {
		x.openedCache = dedup.New()
	}
	if x.mergedCache == nil {
		x.mergedCache = dedup.New()
	}

	return x
}
