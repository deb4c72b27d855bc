package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Aggregate reads branch, status, PR and review state of query.Branch from
// every repository of the catalog. Repositories without the branch are left
// out. Repositories that could not be read stay in the view with Err set.
func (x *UseCase) Aggregate(ctx context.Context, query model.BranchQuery) (model.AggregatedBranchView, error) {
	if query.Branch == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	if x.clients.Catalog() == nil || x.clients.Forges() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "catalog and forge must be configured")
	}

	repos, err := x.clients.Catalog().ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("branch", query.Branch))
	}

	forge, err := x.clients.Forges().For(ctx, query.User)
	if err != nil {
		return nil, err
	}

	return x.aggregate(ctx, forge, repos, query.Branch)
}

func (x *UseCase) aggregate(ctx context.Context, forge interfaces.Forge, repos []types.RepoName, branch types.BranchName) (model.AggregatedBranchView, error) {
	logger := logging.From(ctx)

	// One slot per repository. Each record is built by exactly one task and
	// read only after all tasks finish.
	records := make([]*model.RepoBranchRecord, len(repos))
	if err := x.fanOut(ctx, len(repos), func(ctx context.Context, i int) {
		records[i] = x.readBranch(ctx, forge, repos[i], branch)
	}); err != nil {
		return nil, goerr.Wrap(err, "aggregation aborted", goerr.V("branch", branch))
	}

	view := model.AggregatedBranchView{}
	var errored int
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if rec.Errored() {
			errored++
		}
		view[rec.Repo] = rec
	}

	logger.Info("aggregated branch",
		slog.Any("branch", branch),
		slog.Int("repos", len(repos)),
		slog.Int("found", len(view)),
		slog.Int("errored", errored),
	)
	return view, nil
}

// readBranch returns nil when the branch does not exist in repo.
func (x *UseCase) readBranch(ctx context.Context, forge interfaces.Forge, repo types.RepoName, branch types.BranchName) *model.RepoBranchRecord {
	logger := logging.From(ctx)
	fail := func(err error) *model.RepoBranchRecord {
		logger.Warn("failed to read branch",
			slog.Any("repo", repo),
			slog.Any("branch", branch),
			slog.Any("error", err),
		)
		return &model.RepoBranchRecord{Repo: repo, Err: err}
	}

	ref, err := forge.GetBranch(ctx, repo, branch)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil
		}
		return fail(err)
	}

	sha := ref.SHA
	if sha == "" {
		sha = string(branch)
	}
	checks, err := forge.ListStatusChecks(ctx, repo, sha)
	if err != nil {
		return fail(err)
	}

	pr, err := forge.FindOpenPullRequest(ctx, repo, branch)
	if err != nil {
		return fail(err)
	}

	reviews, err := forge.ListReviews(ctx, repo, pr)
	if err != nil {
		return fail(err)
	}

	rc := model.Reconcile(checks, reviews, pr, x.requiredChecks)
	return &model.RepoBranchRecord{
		Repo:         repo,
		Branch:       ref,
		StatusChecks: model.LatestStatusChecks(checks),
		PullRequest:  pr,
		Reviews:      reviews,
		Status:       rc.Status,
		Review:       rc.Review,
		Mergeable:    rc.Mergeable,
	}
}
