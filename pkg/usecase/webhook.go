package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// NoteWebhookDelivery reports whether this is the first delivery of kind for
// branch within the dedup window.
func (x *UseCase) NoteWebhookDelivery(kind types.WebhookKind, branch types.BranchName) bool {
	switch kind {
	case types.WebhookKindOpened:
		return x.openedCache.Note(string(branch))
	case types.WebhookKindMerged:
		return x.mergedCache.Note(string(branch))
	}
	return false
}

// HandlePullRequestEvent runs the side effect of a pull_request webhook. An
// opened PR gets a comment with the issues its branch refers to. A merged PR
// has its branch deleted from every repository still carrying it.
func (x *UseCase) HandlePullRequestEvent(ctx context.Context, event *model.PullRequestEvent) error {
	kind, ok := event.Kind()
	if !ok {
		return nil
	}

	logger := logging.From(ctx).With(
		slog.Any("repo", event.Repo),
		slog.Int("number", event.Number),
		slog.Any("branch", event.Branch),
		slog.Any("kind", kind),
	)
	ctx = logging.With(ctx, logger)

	switch kind {
	case types.WebhookKindOpened:
		return x.commentIssueLinks(ctx, event)
	case types.WebhookKindMerged:
		deleted, err := x.DeleteBranches(ctx, model.BranchQuery{Branch: event.Branch})
		logger.Info("deleted merged branch", slog.Any("repos", deleted))
		return err
	}
	return nil
}

func (x *UseCase) commentIssueLinks(ctx context.Context, event *model.PullRequestEvent) error {
	refs := model.ParseIssueRefs(event.Branch)
	if len(refs) == 0 {
		logging.From(ctx).Debug("no issue referenced by branch")
		return nil
	}

	provider := x.clients.Forges()
	lines := make([]string, 0, len(refs)+1)
	lines = append(lines, "Linked issues:")
	for _, ref := range refs {
		lines = append(lines, " - "+ref.URL(provider.WebBaseURL(), provider.Organization()))
	}

	forge, err := provider.For(ctx, "")
	if err != nil {
		return err
	}
	if err := forge.CommentPullRequest(ctx, event.Repo, event.Number, strings.Join(lines, "\n")); err != nil {
		return goerr.Wrap(err, "failed to comment issue links")
	}
	return nil
}
