package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Forge ForgeProvider Catalog GitHubApp

import (
	"context"
	"net/http"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

// Forge is the per-repository view of the source forge, scoped to one
// organization and one credential. Every failure is a *types.ForgeError.
type Forge interface {
	GetBranch(ctx context.Context, repo types.RepoName, branch types.BranchName) (*model.BranchRef, error)
	ListStatusChecks(ctx context.Context, repo types.RepoName, ref string) ([]model.StatusCheck, error)
	// FindOpenPullRequest returns nil without error when no open PR has branch as head.
	FindOpenPullRequest(ctx context.Context, repo types.RepoName, branch types.BranchName) (*model.PullRequest, error)
	// ListReviews returns an empty slice when pr is nil.
	ListReviews(ctx context.Context, repo types.RepoName, pr *model.PullRequest) ([]model.Review, error)

	CreatePullRequest(ctx context.Context, repo types.RepoName, req model.NewPullRequest) (*model.PullRequest, error)
	UpdatePullRequest(ctx context.Context, repo types.RepoName, number int, patch model.PRPatch) (*model.PullRequest, error)
	MergePullRequest(ctx context.Context, repo types.RepoName, number int, method types.MergeMethod) error
	ClosePullRequest(ctx context.Context, repo types.RepoName, number int) error
	DeleteBranch(ctx context.Context, repo types.RepoName, branch types.BranchName) error
	CommentPullRequest(ctx context.Context, repo types.RepoName, number int, body string) error

	GetDefaultBranch(ctx context.Context, repo types.RepoName) (string, error)
	GetIssueTitle(ctx context.Context, repo types.RepoName, number int) (string, error)

	SearchCode(ctx context.Context, query string) (model.SearchResult, error)
}

// ForgeProvider hands out a Forge bound to the credential of user, or the
// default credential when user has none.
type ForgeProvider interface {
	For(ctx context.Context, user types.UserID) (Forge, error)
	Organization() string
	WebBaseURL() string
}

type Catalog interface {
	ListRepositories(ctx context.Context) ([]types.RepoName, error)
}

type GitHubApp interface {
	HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error)
}
