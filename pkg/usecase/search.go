package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/crossbranch/pkg/utils/retry"
	"github.com/m-mizutani/goerr/v2"
)

// SearchIssueReferences finds code in the organization mentioning issueID.
// Rate limited searches are retried with a fixed backoff. A search without
// hits returns nil.
func (x *UseCase) SearchIssueReferences(ctx context.Context, issueID string) (model.SearchResult, error) {
	issueID = strings.TrimSpace(issueID)
	if issueID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "issue ID is empty")
	}

	forge, err := x.clients.Forges().For(ctx, "")
	if err != nil {
		return nil, err
	}

	query := strconv.Quote(issueID)
	result, err := retry.Do(ctx, x.retry, func(ctx context.Context) (model.SearchResult, error) {
		return forge.SearchCode(ctx, query)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search issue references", goerr.V("issue", issueID))
	}

	logging.From(ctx).Info("searched issue references",
		slog.String("issue", issueID),
		slog.Int("repos", len(result)),
	)

	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}
