package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// CreatePullRequests opens the missing PRs of a branch and then writes the
// cross-repository link block into every PR of the branch.
func (x *UseCase) CreatePullRequests(ctx context.Context, input *model.CreatePRsInput) (model.BatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	view, err := x.Aggregate(ctx, input.BranchQuery)
	if err != nil {
		return nil, err
	}
	if len(view) == 0 {
		return nil, goerr.Wrap(types.ErrNotFound, "branch does not exist in any repository", goerr.V("branch", input.Branch))
	}

	forge, err := x.clients.Forges().For(ctx, input.User)
	if err != nil {
		return nil, err
	}

	refs := model.ParseIssueRefs(input.Branch)
	tmpl := prTemplate{
		title: input.Title,
		body:  model.PRText(refs, x.clients.Forges().WebBaseURL(), x.clients.Forges().Organization()),
		base:  input.Base,
		draft: input.Draft,
	}
	if tmpl.title == "" {
		tmpl.title = x.prTitle(ctx, forge, input.Branch)
	}

	result, err := x.createForMissing(ctx, forge, view, tmpl)
	if err != nil {
		return result, err
	}

	// New PRs only show up in a fresh view.
	if _, err := x.refreshDescriptions(ctx, forge, input.BranchQuery); err != nil {
		logging.From(ctx).Warn("failed to refresh PR descriptions after creation",
			slog.Any("branch", input.Branch),
			slog.Any("error", err),
		)
	}

	return result, nil
}

// MergePullRequests merges every open PR of a branch. Unless input.Force is
// set, nothing is merged when any repository is not mergeable.
func (x *UseCase) MergePullRequests(ctx context.Context, input *model.MergePRsInput) (model.BatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	view, err := x.Aggregate(ctx, input.BranchQuery)
	if err != nil {
		return nil, err
	}

	if !input.Force {
		var blocked []types.RepoName
		for _, repo := range view.Repos() {
			rec := view[repo]
			if rec.Errored() || (rec.HasOpenPR() && !rec.Mergeable) {
				blocked = append(blocked, repo)
			}
		}
		if len(blocked) > 0 {
			return nil, goerr.Wrap(types.ErrValidationFailed, "pull requests are not mergeable",
				goerr.V("branch", input.Branch),
				goerr.V("repos", blocked),
			)
		}
	}

	return x.MergeAll(ctx, input.User, view, input.Method)
}

func (x *UseCase) ClosePullRequests(ctx context.Context, query model.BranchQuery) (model.BatchResult, error) {
	view, err := x.Aggregate(ctx, query)
	if err != nil {
		return nil, err
	}
	return x.CloseAll(ctx, query.User, view)
}

// RefreshDescriptions rewrites the link block of every PR of a branch.
func (x *UseCase) RefreshDescriptions(ctx context.Context, query model.BranchQuery) (model.BatchResult, error) {
	if query.Branch == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	forge, err := x.clients.Forges().For(ctx, query.User)
	if err != nil {
		return nil, err
	}
	return x.refreshDescriptions(ctx, forge, query)
}

func (x *UseCase) refreshDescriptions(ctx context.Context, forge interfaces.Forge, query model.BranchQuery) (model.BatchResult, error) {
	view, err := x.Aggregate(ctx, query)
	if err != nil {
		return nil, err
	}
	return x.updateDescriptions(ctx, forge, view, model.LinkBlock(view, x.badge))
}

// AnnouncePullRequests posts message as a comment on every open PR of a
// branch.
func (x *UseCase) AnnouncePullRequests(ctx context.Context, query model.BranchQuery, message string) (model.BatchResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "announcement message is empty")
	}

	view, err := x.Aggregate(ctx, query)
	if err != nil {
		return nil, err
	}
	forge, err := x.clients.Forges().For(ctx, query.User)
	if err != nil {
		return nil, err
	}

	return x.forEachOpenPR(ctx, "announce", view, func(ctx context.Context, rec *model.RepoBranchRecord) model.BatchOutcome {
		if err := forge.CommentPullRequest(ctx, rec.Repo, rec.PullRequest.Number, message); err != nil {
			return model.BatchOutcome{Err: err}
		}
		return model.BatchOutcome{PullRequest: rec.PullRequest}
	})
}

func (x *UseCase) DeleteBranches(ctx context.Context, query model.BranchQuery) ([]types.RepoName, error) {
	view, err := x.Aggregate(ctx, query)
	if err != nil {
		return nil, err
	}
	return x.DeleteBranchesAcrossRepos(ctx, query.User, view)
}

// prTitle is the title of the single issue the branch refers to, or the
// branch name itself.
func (x *UseCase) prTitle(ctx context.Context, forge interfaces.Forge, branch types.BranchName) string {
	refs := model.ParseIssueRefs(branch)
	if len(refs) != 1 {
		return string(branch)
	}

	title, err := forge.GetIssueTitle(ctx, refs[0].Repo, refs[0].Number)
	if err != nil {
		logging.From(ctx).Warn("failed to get issue title, using branch name",
			slog.Any("repo", refs[0].Repo),
			slog.Int("issue", refs[0].Number),
			slog.Any("error", err),
		)
		return string(branch)
	}
	if title == "" {
		return string(branch)
	}
	return title
}
