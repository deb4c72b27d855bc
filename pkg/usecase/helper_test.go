package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/mock"
	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/infra"
	"github.com/m-mizutani/crossbranch/pkg/usecase"
)

type fakeRepo struct {
	sha           string
	checks        []model.StatusCheck
	pr            *model.PullRequest
	reviews       []model.Review
	branchErr     error
	defaultBranch string
	deleted       bool
	comments      []string
}

// fakeForge keeps a small organization in memory. The branch exists in every
// repository registered in repos.
type fakeForge struct {
	mu     sync.Mutex
	branch types.BranchName
	repos  map[types.RepoName]*fakeRepo
	nextPR int
}

func newFakeForge(branch types.BranchName) *fakeForge {
	return &fakeForge{
		branch: branch,
		repos:  map[types.RepoName]*fakeRepo{},
		nextPR: 100,
	}
}

func (f *fakeForge) add(repo types.RepoName, r *fakeRepo) *fakeForge {
	if r.sha == "" {
		r.sha = "sha-" + string(repo)
	}
	f.repos[repo] = r
	return f
}

func (f *fakeForge) get(repo types.RepoName) *fakeRepo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.repos[repo]
}

func notFound(op string, repo types.RepoName) error {
	return &types.ForgeError{Kind: types.ErrorKindNotFound, Repo: repo, Op: op}
}

func forgeErr(kind types.ErrorKind, op string, repo types.RepoName) error {
	return &types.ForgeError{Kind: kind, Repo: repo, Op: op, Err: fmt.Errorf("%s failed", op)}
}

func copyPR(pr *model.PullRequest) *model.PullRequest {
	if pr == nil {
		return nil
	}
	c := *pr
	return &c
}

func (f *fakeForge) Mock() *mock.ForgeMock {
	lookup := func(op string, repo types.RepoName) (*fakeRepo, error) {
		r, ok := f.repos[repo]
		if !ok || r.deleted {
			return nil, notFound(op, repo)
		}
		return r, nil
	}

	return &mock.ForgeMock{
		GetBranchFunc: func(ctx context.Context, repo types.RepoName, branch types.BranchName) (*model.BranchRef, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("get_branch", repo)
			if err != nil {
				return nil, err
			}
			if branch != f.branch {
				return nil, notFound("get_branch", repo)
			}
			if r.branchErr != nil {
				return nil, r.branchErr
			}
			return &model.BranchRef{Name: branch, SHA: r.sha}, nil
		},
		ListStatusChecksFunc: func(ctx context.Context, repo types.RepoName, ref string) ([]model.StatusCheck, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("list_statuses", repo)
			if err != nil {
				return nil, err
			}
			return append([]model.StatusCheck(nil), r.checks...), nil
		},
		FindOpenPullRequestFunc: func(ctx context.Context, repo types.RepoName, branch types.BranchName) (*model.PullRequest, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("list_pulls", repo)
			if err != nil {
				return nil, err
			}
			if r.pr == nil || r.pr.State != types.PRStateOpen {
				return nil, nil
			}
			return copyPR(r.pr), nil
		},
		ListReviewsFunc: func(ctx context.Context, repo types.RepoName, pr *model.PullRequest) ([]model.Review, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if pr == nil {
				return []model.Review{}, nil
			}
			r, err := lookup("list_reviews", repo)
			if err != nil {
				return nil, err
			}
			return append([]model.Review{}, r.reviews...), nil
		},
		CreatePullRequestFunc: func(ctx context.Context, repo types.RepoName, req model.NewPullRequest) (*model.PullRequest, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("create", repo)
			if err != nil {
				return nil, err
			}
			f.nextPR++
			r.pr = &model.PullRequest{
				Number:  f.nextPR,
				State:   types.PRStateOpen,
				Title:   req.Title,
				Body:    req.Body,
				HTMLURL: fmt.Sprintf("https://github.com/acme/%s/pull/%d", repo, f.nextPR),
				Head:    req.Head,
				Base:    req.Base,
				Draft:   req.Draft,
			}
			return copyPR(r.pr), nil
		},
		UpdatePullRequestFunc: func(ctx context.Context, repo types.RepoName, number int, patch model.PRPatch) (*model.PullRequest, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("update", repo)
			if err != nil {
				return nil, err
			}
			if r.pr == nil || r.pr.Number != number {
				return nil, notFound("update", repo)
			}
			if patch.Body != nil {
				r.pr.Body = *patch.Body
			}
			if patch.Title != nil {
				r.pr.Title = *patch.Title
			}
			return copyPR(r.pr), nil
		},
		MergePullRequestFunc: func(ctx context.Context, repo types.RepoName, number int, method types.MergeMethod) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("merge", repo)
			if err != nil {
				return err
			}
			r.pr.State = types.PRStateMerged
			return nil
		},
		ClosePullRequestFunc: func(ctx context.Context, repo types.RepoName, number int) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("close", repo)
			if err != nil {
				return err
			}
			r.pr.State = types.PRStateClosed
			return nil
		},
		DeleteBranchFunc: func(ctx context.Context, repo types.RepoName, branch types.BranchName) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("delete_branch", repo)
			if err != nil {
				return err
			}
			r.deleted = true
			return nil
		},
		CommentPullRequestFunc: func(ctx context.Context, repo types.RepoName, number int, body string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("comment", repo)
			if err != nil {
				return err
			}
			r.comments = append(r.comments, body)
			return nil
		},
		GetDefaultBranchFunc: func(ctx context.Context, repo types.RepoName) (string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			r, err := lookup("get_repository", repo)
			if err != nil {
				return "", err
			}
			if r.defaultBranch == "" {
				return "main", nil
			}
			return r.defaultBranch, nil
		},
		GetIssueTitleFunc: func(ctx context.Context, repo types.RepoName, number int) (string, error) {
			return fmt.Sprintf("Issue %d of %s", number, repo), nil
		},
		SearchCodeFunc: func(ctx context.Context, query string) (model.SearchResult, error) {
			return nil, nil
		},
	}
}

func staticCatalog(repos ...types.RepoName) *mock.CatalogMock {
	return &mock.CatalogMock{
		ListRepositoriesFunc: func(ctx context.Context) ([]types.RepoName, error) {
			return repos, nil
		},
	}
}

func newProvider(forge interfaces.Forge) *mock.ForgeProviderMock {
	return &mock.ForgeProviderMock{
		ForFunc: func(ctx context.Context, user types.UserID) (interfaces.Forge, error) {
			return forge, nil
		},
		OrganizationFunc: func() string { return "acme" },
		WebBaseURLFunc:   func() string { return "https://github.com" },
	}
}

func newUseCase(t *testing.T, catalog interfaces.Catalog, forge interfaces.Forge, options ...usecase.Option) *usecase.UseCase {
	t.Helper()
	clients := infra.New(
		infra.WithCatalog(catalog),
		infra.WithForges(newProvider(forge)),
	)
	return usecase.New(clients, options...)
}

func newClients(catalog interfaces.Catalog, provider interfaces.ForgeProvider) *infra.Clients {
	return infra.New(
		infra.WithCatalog(catalog),
		infra.WithForges(provider),
	)
}
