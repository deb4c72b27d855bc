package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

type UseCase interface {
	Aggregate(ctx context.Context, query model.BranchQuery) (model.AggregatedBranchView, error)

	CreateForMissing(ctx context.Context, user types.UserID, view model.AggregatedBranchView, prText, targetBase string, draft bool) (model.BatchResult, error)
	MergeAll(ctx context.Context, user types.UserID, view model.AggregatedBranchView, method types.MergeMethod) (model.BatchResult, error)
	CloseAll(ctx context.Context, user types.UserID, view model.AggregatedBranchView) (model.BatchResult, error)
	UpdateDescriptions(ctx context.Context, user types.UserID, view model.AggregatedBranchView, linkBlock string) (model.BatchResult, error)
	DeleteBranchesAcrossRepos(ctx context.Context, user types.UserID, view model.AggregatedBranchView) ([]types.RepoName, error)

	CreatePullRequests(ctx context.Context, input *model.CreatePRsInput) (model.BatchResult, error)
	MergePullRequests(ctx context.Context, input *model.MergePRsInput) (model.BatchResult, error)
	ClosePullRequests(ctx context.Context, query model.BranchQuery) (model.BatchResult, error)
	RefreshDescriptions(ctx context.Context, query model.BranchQuery) (model.BatchResult, error)
	AnnouncePullRequests(ctx context.Context, query model.BranchQuery, message string) (model.BatchResult, error)
	DeleteBranches(ctx context.Context, query model.BranchQuery) ([]types.RepoName, error)

	SearchIssueReferences(ctx context.Context, issueID string) (model.SearchResult, error)

	NoteWebhookDelivery(kind types.WebhookKind, branch types.BranchName) bool
	HandlePullRequestEvent(ctx context.Context, event *model.PullRequestEvent) error
}
