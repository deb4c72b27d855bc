package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/errutil"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var (
	errInvalidSignature = goerr.New("invalid webhook signature")
	errInvalidPayload   = goerr.New("invalid webhook payload")
)

func webhookErrorStatus(err error) int {
	if errors.Is(err, errInvalidSignature) {
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}

// parseGitHubEvent verifies the signature of a delivery and extracts the
// pull request event. It returns nil for deliveries that need no action.
func parseGitHubEvent(r *http.Request, secret types.WebhookSecret) (*model.PullRequestEvent, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return nil, goerr.Wrap(errInvalidSignature, "validating payload", goerr.V("cause", err.Error()))
	}

	raw, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(errInvalidPayload, "parsing webhook", goerr.V("cause", err.Error()))
	}

	event := githubEventToPullRequestEvent(raw)
	logging.From(ctx).Info("Received GitHub event",
		slog.String("type", github.WebHookType(r)),
		slog.Any("event", event),
	)
	return event, nil
}

func githubEventToPullRequestEvent(event interface{}) *model.PullRequestEvent {
	switch ev := event.(type) {
	case *github.PullRequestEvent:
		pr := ev.GetPullRequest()
		result := &model.PullRequestEvent{
			Action: ev.GetAction(),
			Repo:   types.RepoName(ev.GetRepo().GetName()),
			Number: pr.GetNumber(),
			Branch: types.BranchName(pr.GetHead().GetRef()),
			Merged: pr.GetMerged(),
			Draft:  pr.GetDraft(),
		}
		if _, ok := result.Kind(); !ok {
			logging.Default().Debug("ignore PR event",
				slog.String("action", ev.GetAction()),
				slog.Bool("draft", pr.GetDraft()),
			)
			return nil
		}
		return result

	case *github.PingEvent:
		return nil

	default:
		logging.Default().Debug("unsupported event", slog.String("type", fmt.Sprintf("%T", event)))
		return nil
	}
}

// runPullRequestEvent is run in a background goroutine.
func runPullRequestEvent(ctx context.Context, uc interfaces.UseCase, event *model.PullRequestEvent) {
	logger := logging.From(ctx).With(slog.Any("event", event))
	logger.Info("Handling pull request event", slog.String("delivery_id", logging.DeliveryID(ctx)))

	if err := uc.HandlePullRequestEvent(ctx, event); err != nil {
		errutil.HandleError(ctx, "fail to handle pull request event", err)
		return
	}
	logger.Info("Pull request event handled")
}

// Test helpers - exported for testing
func GitHubEventToPullRequestEventForTest(event interface{}) *model.PullRequestEvent {
	return githubEventToPullRequestEvent(event)
}
