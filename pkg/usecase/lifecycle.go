package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// prTemplate is what createForMissing puts into every new PR.
type prTemplate struct {
	title string
	body  string
	base  string
	draft bool
}

// CreateForMissing opens a PR in every repository of view that has none yet.
// Creation is strictly sequential to stay within the secondary rate limit
// of content creation endpoints.
func (x *UseCase) CreateForMissing(ctx context.Context, user types.UserID, view model.AggregatedBranchView, prText, targetBase string, draft bool) (model.BatchResult, error) {
	forge, err := x.clients.Forges().For(ctx, user)
	if err != nil {
		return nil, err
	}

	branch := viewBranch(view)
	tmpl := prTemplate{
		title: x.prTitle(ctx, forge, branch),
		body:  prText,
		base:  targetBase,
		draft: draft,
	}
	return x.createForMissing(ctx, forge, view, tmpl)
}

func (x *UseCase) createForMissing(ctx context.Context, forge interfaces.Forge, view model.AggregatedBranchView, tmpl prTemplate) (model.BatchResult, error) {
	logger := logging.From(ctx)
	result := model.BatchResult{}

	for _, repo := range view.Repos() {
		rec := view[repo]
		if rec.Errored() {
			result[repo] = model.BatchOutcome{Err: rec.Err}
			continue
		}
		if rec.PullRequest != nil {
			result[repo] = model.BatchOutcome{PullRequest: rec.PullRequest, Skipped: true}
			continue
		}

		if err := ctx.Err(); err != nil {
			logBatch(ctx, "create", result)
			return result, goerr.Wrap(err, "PR creation cancelled", goerr.V("repo", repo))
		}

		pr, err := x.createOne(ctx, forge, rec, tmpl)
		if err != nil {
			logger.Warn("failed to create PR", slog.Any("repo", repo), slog.Any("error", err))
			result[repo] = model.BatchOutcome{Err: err}
			continue
		}
		result[repo] = model.BatchOutcome{PullRequest: pr}
	}

	logBatch(ctx, "create", result)
	return result, nil
}

func (x *UseCase) createOne(ctx context.Context, forge interfaces.Forge, rec *model.RepoBranchRecord, tmpl prTemplate) (*model.PullRequest, error) {
	base := tmpl.base
	if base == "" {
		b, err := forge.GetDefaultBranch(ctx, rec.Repo)
		if err != nil {
			return nil, err
		}
		base = b
	}

	var head types.BranchName
	if rec.Branch != nil {
		head = rec.Branch.Name
	}

	return forge.CreatePullRequest(ctx, rec.Repo, model.NewPullRequest{
		Title: tmpl.title,
		Body:  tmpl.body,
		Head:  head,
		Base:  base,
		Draft: tmpl.draft,
	})
}

// MergeAll merges every open PR of view concurrently.
func (x *UseCase) MergeAll(ctx context.Context, user types.UserID, view model.AggregatedBranchView, method types.MergeMethod) (model.BatchResult, error) {
	if method == "" {
		method = x.mergeMethod
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	forge, err := x.clients.Forges().For(ctx, user)
	if err != nil {
		return nil, err
	}

	return x.forEachOpenPR(ctx, "merge", view, func(ctx context.Context, rec *model.RepoBranchRecord) model.BatchOutcome {
		if err := forge.MergePullRequest(ctx, rec.Repo, rec.PullRequest.Number, method); err != nil {
			return model.BatchOutcome{Err: err}
		}
		return model.BatchOutcome{PullRequest: withState(rec.PullRequest, types.PRStateMerged)}
	})
}

// CloseAll closes every open PR of view concurrently.
func (x *UseCase) CloseAll(ctx context.Context, user types.UserID, view model.AggregatedBranchView) (model.BatchResult, error) {
	forge, err := x.clients.Forges().For(ctx, user)
	if err != nil {
		return nil, err
	}

	return x.forEachOpenPR(ctx, "close", view, func(ctx context.Context, rec *model.RepoBranchRecord) model.BatchOutcome {
		if err := forge.ClosePullRequest(ctx, rec.Repo, rec.PullRequest.Number); err != nil {
			return model.BatchOutcome{Err: err}
		}
		return model.BatchOutcome{PullRequest: withState(rec.PullRequest, types.PRStateClosed)}
	})
}

// UpdateDescriptions splices linkBlock under the "# REPOS" marker of every
// open PR body. A PR whose body already carries the same block is not
// touched, so repeated calls converge.
func (x *UseCase) UpdateDescriptions(ctx context.Context, user types.UserID, view model.AggregatedBranchView, linkBlock string) (model.BatchResult, error) {
	forge, err := x.clients.Forges().For(ctx, user)
	if err != nil {
		return nil, err
	}
	return x.updateDescriptions(ctx, forge, view, linkBlock)
}

func (x *UseCase) updateDescriptions(ctx context.Context, forge interfaces.Forge, view model.AggregatedBranchView, linkBlock string) (model.BatchResult, error) {
	logger := logging.From(ctx)
	result := model.BatchResult{}

	for _, repo := range view.Repos() {
		rec := view[repo]
		if rec.Errored() {
			result[repo] = model.BatchOutcome{Err: rec.Err}
			continue
		}
		if !rec.HasOpenPR() {
			continue
		}
		if err := ctx.Err(); err != nil {
			logBatch(ctx, "update", result)
			return result, goerr.Wrap(err, "description update cancelled", goerr.V("repo", repo))
		}

		body := model.SpliceRepoLinks(rec.PullRequest.Body, linkBlock)
		if body == rec.PullRequest.Body {
			result[repo] = model.BatchOutcome{PullRequest: rec.PullRequest, Skipped: true}
			continue
		}

		pr, err := forge.UpdatePullRequest(ctx, repo, rec.PullRequest.Number, model.PRPatch{Body: &body})
		if err != nil {
			logger.Warn("failed to update PR description", slog.Any("repo", repo), slog.Any("error", err))
			result[repo] = model.BatchOutcome{Err: err}
			continue
		}
		result[repo] = model.BatchOutcome{PullRequest: pr}
	}

	logBatch(ctx, "update", result)
	return result, nil
}

// DeleteBranchesAcrossRepos deletes the branch from every repository of view.
// All repositories are attempted. If any fails, the error is a
// *types.PartialFailureError and the returned slice still lists the
// successful ones.
func (x *UseCase) DeleteBranchesAcrossRepos(ctx context.Context, user types.UserID, view model.AggregatedBranchView) ([]types.RepoName, error) {
	forge, err := x.clients.Forges().For(ctx, user)
	if err != nil {
		return nil, err
	}
	return x.deleteBranches(ctx, forge, view)
}

func (x *UseCase) deleteBranches(ctx context.Context, forge interfaces.Forge, view model.AggregatedBranchView) ([]types.RepoName, error) {
	logger := logging.From(ctx)
	repos := view.Repos()
	errs := make([]error, len(repos))
	done := make([]bool, len(repos))

	fanErr := x.fanOut(ctx, len(repos), func(ctx context.Context, i int) {
		rec := view[repos[i]]
		done[i] = true
		if rec.Errored() {
			errs[i] = rec.Err
			return
		}
		branch, err := recordBranch(rec)
		if err != nil {
			errs[i] = err
			return
		}
		if err := forge.DeleteBranch(ctx, rec.Repo, branch); err != nil {
			logger.Warn("failed to delete branch", slog.Any("repo", rec.Repo), slog.Any("branch", branch), slog.Any("error", err))
			errs[i] = err
		}
	})

	succeeded := []types.RepoName{}
	failed := map[types.RepoName]error{}
	for i, repo := range repos {
		switch {
		case !done[i]:
			continue
		case errs[i] != nil:
			failed[repo] = errs[i]
		default:
			succeeded = append(succeeded, repo)
		}
	}

	logger.Info("deleted branches",
		slog.Int("succeeded", len(succeeded)),
		slog.Int("failed", len(failed)),
	)

	if fanErr != nil {
		return succeeded, fanErr
	}
	if len(failed) > 0 {
		return succeeded, &types.PartialFailureError{Succeeded: succeeded, Failed: failed}
	}
	return succeeded, nil
}

// forEachOpenPR runs fn concurrently for each repository with an open PR.
// Errored records are reported as failures without calling fn.
func (x *UseCase) forEachOpenPR(ctx context.Context, op string, view model.AggregatedBranchView, fn func(ctx context.Context, rec *model.RepoBranchRecord) model.BatchOutcome) (model.BatchResult, error) {
	logger := logging.From(ctx)
	result := model.BatchResult{}

	var targets []*model.RepoBranchRecord
	for _, repo := range view.Repos() {
		rec := view[repo]
		switch {
		case rec.Errored():
			result[repo] = model.BatchOutcome{Err: rec.Err}
		case rec.HasOpenPR():
			targets = append(targets, rec)
		}
	}

	var mu sync.Mutex
	err := x.fanOut(ctx, len(targets), func(ctx context.Context, i int) {
		rec := targets[i]
		outcome := fn(ctx, rec)
		if outcome.Err != nil {
			logger.Warn("batch operation failed",
				slog.String("op", op),
				slog.Any("repo", rec.Repo),
				slog.Any("error", outcome.Err),
			)
		}

		mu.Lock()
		result[rec.Repo] = outcome
		mu.Unlock()
	})

	logBatch(ctx, op, result)
	if err != nil {
		return result, err
	}
	return result, nil
}

func logBatch(ctx context.Context, op string, result model.BatchResult) {
	logging.From(ctx).Info("batch operation completed",
		slog.String("op", op),
		slog.Any("succeeded", result.Succeeded()),
		slog.Int("failed", len(result.Failed())),
	)
}

func withState(pr *model.PullRequest, state types.PRState) *model.PullRequest {
	updated := *pr
	updated.State = state
	return &updated
}

// viewBranch returns the branch name the view was built for.
func viewBranch(view model.AggregatedBranchView) types.BranchName {
	for _, repo := range view.Repos() {
		if rec := view[repo]; rec.Branch != nil {
			return rec.Branch.Name
		}
	}
	return ""
}

// recordBranch names the branch a record refers to. The head of the PR is used
// when the record carries no branch ref.
func recordBranch(rec *model.RepoBranchRecord) (types.BranchName, error) {
	switch {
	case rec.Branch != nil && rec.Branch.Name != "":
		return rec.Branch.Name, nil
	case rec.PullRequest != nil && rec.PullRequest.Head != "":
		return rec.PullRequest.Head, nil
	}
	return "", goerr.Wrap(types.ErrValidationFailed, "record has no branch", goerr.V("repo", rec.Repo))
}
