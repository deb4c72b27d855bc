package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func openPR(n int, branch types.BranchName) *model.PullRequest {
	return &model.PullRequest{Number: n, State: types.PRStateOpen, Head: branch, Body: "original body"}
}

func TestMergeAll(t *testing.T) {
	const branch = types.BranchName("feature/x")
	ctx := context.Background()

	t.Run("one failing repository does not affect the others", func(t *testing.T) {
		fake := newFakeForge(branch)
		repos := []types.RepoName{"r1", "r2", "r3", "r4", "r5"}
		for i, r := range repos {
			fake.add(r, &fakeRepo{pr: openPR(i+1, branch)})
		}
		forge := fake.Mock()
		merge := forge.MergePullRequestFunc
		forge.MergePullRequestFunc = func(ctx context.Context, repo types.RepoName, number int, method types.MergeMethod) error {
			if repo == "r3" {
				return forgeErr(types.ErrorKindOther, "merge", repo)
			}
			return merge(ctx, repo, number, method)
		}
		uc := newUseCase(t, staticCatalog(repos...), forge)

		view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
		gt.NoError(t, err)

		result, err := uc.MergeAll(ctx, "", view, types.MergeMethodSquash)
		gt.NoError(t, err)
		gt.V(t, len(result)).Equal(5)
		gt.V(t, result.Succeeded()).Equal([]types.RepoName{"r1", "r2", "r4", "r5"})
		gt.V(t, len(result.Failed())).Equal(1)
		gt.True(t, errors.Is(result["r3"].Err, types.ErrForgeFailure))
		gt.V(t, result["r1"].PullRequest.State).Equal(types.PRStateMerged)

		gt.V(t, fake.get("r1").pr.State).Equal(types.PRStateMerged)
		gt.V(t, fake.get("r3").pr.State).Equal(types.PRStateOpen)
	})

	t.Run("repositories without PR are not touched", func(t *testing.T) {
		fake := newFakeForge(branch).
			add("A", &fakeRepo{pr: openPR(1, branch)}).
			add("B", &fakeRepo{})
		forge := fake.Mock()
		uc := newUseCase(t, staticCatalog("A", "B"), forge)

		view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
		gt.NoError(t, err)
		result, err := uc.MergeAll(ctx, "", view, "")
		gt.NoError(t, err)
		gt.V(t, len(result)).Equal(1)
		gt.V(t, len(forge.MergePullRequestCalls())).Equal(1)
		// default method
		gt.V(t, forge.MergePullRequestCalls()[0].Method).Equal(types.MergeMethodSquash)
	})

	t.Run("errored repositories are reported as failures", func(t *testing.T) {
		fake := newFakeForge(branch).
			add("A", &fakeRepo{pr: openPR(1, branch)}).
			add("B", &fakeRepo{branchErr: forgeErr(types.ErrorKindRateLimited, "get_branch", "B")})
		forge := fake.Mock()
		uc := newUseCase(t, staticCatalog("A", "B"), forge)

		view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
		gt.NoError(t, err)
		result, err := uc.MergeAll(ctx, "", view, types.MergeMethodMerge)
		gt.NoError(t, err)
		gt.True(t, errors.Is(result["B"].Err, types.ErrRateLimited))
		gt.True(t, result["A"].OK())
	})

	t.Run("invalid method is rejected", func(t *testing.T) {
		uc := newUseCase(t, staticCatalog(), newFakeForge(branch).Mock())
		_, err := uc.MergeAll(ctx, "", model.AggregatedBranchView{}, "fast-forward")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestCloseAll(t *testing.T) {
	const branch = types.BranchName("feature/x")
	ctx := context.Background()

	fake := newFakeForge(branch).
		add("A", &fakeRepo{pr: openPR(1, branch)}).
		add("B", &fakeRepo{pr: openPR(2, branch)})
	uc := newUseCase(t, staticCatalog("A", "B"), fake.Mock())

	view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
	gt.NoError(t, err)
	result, err := uc.CloseAll(ctx, "", view)
	gt.NoError(t, err)
	gt.V(t, result.Succeeded()).Equal([]types.RepoName{"A", "B"})
	gt.V(t, fake.get("A").pr.State).Equal(types.PRStateClosed)
	gt.V(t, fake.get("B").pr.State).Equal(types.PRStateClosed)
}

func TestCreateForMissing(t *testing.T) {
	const branch = types.BranchName("fix-login__web-42")
	ctx := context.Background()

	t.Run("creation is sequential", func(t *testing.T) {
		fake := newFakeForge(branch)
		repos := []types.RepoName{"r1", "r2", "r3", "r4"}
		for _, r := range repos {
			fake.add(r, &fakeRepo{})
		}
		forge := fake.Mock()
		create := forge.CreatePullRequestFunc

		var inFlight, maxInFlight int32
		forge.CreatePullRequestFunc = func(ctx context.Context, repo types.RepoName, req model.NewPullRequest) (*model.PullRequest, error) {
			n := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			for {
				m := atomic.LoadInt32(&maxInFlight)
				if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return create(ctx, repo, req)
		}
		uc := newUseCase(t, staticCatalog(repos...), forge, usecase.WithConcurrency(4))

		view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
		gt.NoError(t, err)
		result, err := uc.CreateForMissing(ctx, "", view, "body", "develop", true)
		gt.NoError(t, err)

		gt.V(t, atomic.LoadInt32(&maxInFlight)).Equal(int32(1))
		gt.V(t, result.Succeeded()).Equal(repos)

		calls := forge.CreatePullRequestCalls()
		gt.V(t, len(calls)).Equal(4)
		for i, call := range calls {
			gt.V(t, call.Repo).Equal(repos[i])
			gt.V(t, call.Req.Base).Equal("develop")
			gt.V(t, call.Req.Head).Equal(branch)
			gt.V(t, call.Req.Body).Equal("body")
			gt.True(t, call.Req.Draft)
			// single issue reference gives the issue title
			gt.V(t, call.Req.Title).Equal("Issue 42 of web")
		}
		gt.V(t, len(forge.GetDefaultBranchCalls())).Equal(0)
	})

	t.Run("existing PRs are skipped and empty base uses default branch", func(t *testing.T) {
		fake := newFakeForge(branch).
			add("A", &fakeRepo{pr: openPR(7, branch)}).
			add("B", &fakeRepo{defaultBranch: "trunk"})
		forge := fake.Mock()
		uc := newUseCase(t, staticCatalog("A", "B"), forge)

		view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
		gt.NoError(t, err)
		result, err := uc.CreateForMissing(ctx, "", view, "body", "", false)
		gt.NoError(t, err)

		gt.True(t, result["A"].Skipped)
		gt.V(t, result["A"].PullRequest.Number).Equal(7)
		gt.False(t, result["B"].Skipped)
		gt.V(t, result["B"].PullRequest.Base).Equal("trunk")
		gt.V(t, len(forge.CreatePullRequestCalls())).Equal(1)
	})

	t.Run("failure in one repository does not stop the rest", func(t *testing.T) {
		fake := newFakeForge(branch).add("A", &fakeRepo{}).add("B", &fakeRepo{})
		forge := fake.Mock()
		create := forge.CreatePullRequestFunc
		forge.CreatePullRequestFunc = func(ctx context.Context, repo types.RepoName, req model.NewPullRequest) (*model.PullRequest, error) {
			if repo == "A" {
				return nil, forgeErr(types.ErrorKindOther, "create", repo)
			}
			return create(ctx, repo, req)
		}
		uc := newUseCase(t, staticCatalog("A", "B"), forge)

		view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
		gt.NoError(t, err)
		result, err := uc.CreateForMissing(ctx, "", view, "body", "main", false)
		gt.NoError(t, err)
		gt.False(t, result["A"].OK())
		gt.True(t, result["B"].OK())
	})
}

func TestUpdateDescriptions(t *testing.T) {
	const branch = types.BranchName("feature/x")
	ctx := context.Background()

	fake := newFakeForge(branch).
		add("A", &fakeRepo{pr: openPR(1, branch)}).
		add("B", &fakeRepo{pr: openPR(2, branch)}).
		add("C", &fakeRepo{})
	forge := fake.Mock()
	uc := newUseCase(t, staticCatalog("A", "B", "C"), forge)

	links := " * [A PR #1](https://x/1)\n * [B PR #2](https://x/2)"

	view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
	gt.NoError(t, err)
	result, err := uc.UpdateDescriptions(ctx, "", view, links)
	gt.NoError(t, err)
	gt.V(t, len(result)).Equal(2)
	gt.False(t, result["A"].Skipped)

	once := fake.get("A").pr.Body
	gt.True(t, strings.HasPrefix(once, "original body\n\n# REPOS\n\n"))
	gt.S(t, once).Contains("[B PR #2]")

	// second pass over a fresh view changes nothing
	view, err = uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
	gt.NoError(t, err)
	result, err = uc.UpdateDescriptions(ctx, "", view, links)
	gt.NoError(t, err)
	gt.True(t, result["A"].Skipped)
	gt.True(t, result["B"].Skipped)
	gt.V(t, fake.get("A").pr.Body).Equal(once)
	gt.V(t, len(forge.UpdatePullRequestCalls())).Equal(2)
}

func TestDeleteBranchesAcrossRepos(t *testing.T) {
	const branch = types.BranchName("feature/x")
	ctx := context.Background()

	t.Run("partial failure lists both sides", func(t *testing.T) {
		fake := newFakeForge(branch).add("A", &fakeRepo{}).add("B", &fakeRepo{}).add("C", &fakeRepo{})
		forge := fake.Mock()
		del := forge.DeleteBranchFunc
		forge.DeleteBranchFunc = func(ctx context.Context, repo types.RepoName, branch types.BranchName) error {
			if repo == "B" {
				return forgeErr(types.ErrorKindUnauthorized, "delete_branch", repo)
			}
			return del(ctx, repo, branch)
		}
		uc := newUseCase(t, staticCatalog("A", "B", "C"), forge)

		view, err := uc.Aggregate(ctx, model.BranchQuery{Branch: branch})
		gt.NoError(t, err)

		deleted, err := uc.DeleteBranchesAcrossRepos(ctx, "", view)
		gt.True(t, errors.Is(err, types.ErrPartialFailure))
		gt.V(t, deleted).Equal([]types.RepoName{"A", "C"})

		var pf *types.PartialFailureError
		gt.True(t, errors.As(err, &pf))
		gt.V(t, pf.Succeeded).Equal([]types.RepoName{"A", "C"})
		gt.True(t, errors.Is(pf.Failed["B"], types.ErrUnauthorized))

		// every repository was attempted
		gt.V(t, len(forge.DeleteBranchCalls())).Equal(3)
		gt.True(t, fake.get("A").deleted)
		gt.True(t, fake.get("C").deleted)
	})

	t.Run("all succeed", func(t *testing.T) {
		fake := newFakeForge(branch).add("A", &fakeRepo{}).add("B", &fakeRepo{})
		uc := newUseCase(t, staticCatalog("A", "B"), fake.Mock())

		deleted, err := uc.DeleteBranches(ctx, model.BranchQuery{Branch: branch})
		gt.NoError(t, err)
		gt.V(t, deleted).Equal([]types.RepoName{"A", "B"})
	})
}

func TestDeleteBranchesWithoutBranchRef(t *testing.T) {
	ctx := context.Background()
	fake := newFakeForge("feature/x").add("A", &fakeRepo{}).add("B", &fakeRepo{})
	forge := fake.Mock()
	uc := newUseCase(t, staticCatalog("A", "B"), forge)

	view := model.AggregatedBranchView{
		// no branch ref, the PR head names the branch
		"A": {Repo: "A", PullRequest: &model.PullRequest{Number: 1, State: types.PRStateOpen, Head: "feature/x"}},
		// nothing names the branch
		"B": {Repo: "B"},
	}

	deleted, err := uc.DeleteBranchesAcrossRepos(ctx, "", view)
	gt.True(t, errors.Is(err, types.ErrPartialFailure))
	gt.V(t, deleted).Equal([]types.RepoName{"A"})

	var pf *types.PartialFailureError
	gt.True(t, errors.As(err, &pf))
	gt.True(t, errors.Is(pf.Failed["B"], types.ErrValidationFailed))

	calls := forge.DeleteBranchCalls()
	gt.V(t, len(calls)).Equal(1)
	gt.V(t, calls[0].Branch).Equal(types.BranchName("feature/x"))
}

func TestViewBranch(t *testing.T) {
	view := model.AggregatedBranchView{
		"A": {Repo: "A", Err: errors.New("x")},
		"B": {Repo: "B", Branch: &model.BranchRef{Name: "feature/x"}},
	}
	gt.V(t, usecase.ViewBranchForTest(view)).Equal(types.BranchName("feature/x"))
	gt.V(t, usecase.ViewBranchForTest(model.AggregatedBranchView{})).Equal(types.BranchName(""))
}
