package server

import (
	"context"
	"encoding/json"
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

const (
	// TriggerSignatureHeader carries "sha256=<hex>", the HMAC of the branch name.
	TriggerSignatureHeader = "X-Crossbranch-Signature"

	maxTriggerBodySize = 64 * 1024
)

type pullRequestTrigger struct {
	Branch types.BranchName `json:"branch"`
	Author types.UserID     `json:"author"`
	Target string           `json:"target"`
	Draft  *bool            `json:"draft"`
	DryRun bool             `json:"dryrun"`
}

// triggerPlan is the action a trigger resolves to. A dry run stops here.
type triggerPlan struct {
	Action string           `json:"action"`
	Branch types.BranchName `json:"branch"`
	Author types.UserID     `json:"author,omitempty"`
	Target string           `json:"target,omitempty"`
	Draft  bool             `json:"draft"`
	DryRun bool             `json:"dryrun"`
}

func (x *pullRequestTrigger) input() *model.CreatePRsInput {
	draft := true
	if x.Draft != nil {
		draft = *x.Draft
	}
	return &model.CreatePRsInput{
		BranchQuery: model.BranchQuery{Branch: x.Branch, User: x.Author},
		Base:        x.Target,
		Draft:       draft,
	}
}

// parsePullRequestTrigger decodes the request and verifies the signature of
// its branch. An unset secret rejects every trigger.
func parsePullRequestTrigger(r *http.Request, secret types.WebhookSecret) (*pullRequestTrigger, error) {
	var req pullRequestTrigger
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, goerr.Wrap(errInvalidPayload, "decoding trigger", goerr.V("cause", err.Error()))
	}

	if secret == "" {
		return nil, goerr.Wrap(errInvalidSignature, "trigger secret is not configured")
	}
	sig := r.Header.Get(TriggerSignatureHeader)
	if err := github.ValidateSignature(sig, []byte(req.Branch), []byte(secret)); err != nil {
		return nil, goerr.Wrap(errInvalidSignature, "validating trigger signature",
			goerr.V("branch", req.Branch),
			goerr.V("cause", err.Error()),
		)
	}

	if err := req.input().Validate(); err != nil {
		return nil, goerr.Wrap(errInvalidPayload, "invalid trigger", goerr.V("cause", err.Error()))
	}
	return &req, nil
}

func planOf(input *model.CreatePRsInput, dryRun bool) triggerPlan {
	return triggerPlan{
		Action: "create_pull_requests",
		Branch: input.Branch,
		Author: input.User,
		Target: input.Base,
		Draft:  input.Draft,
		DryRun: dryRun,
	}
}

func handlePullRequestTrigger(uc interfaces.UseCase, secret types.WebhookSecret) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		r.Body = http.MaxBytesReader(w, r.Body, maxTriggerBodySize)
		req, err := parsePullRequestTrigger(r, secret)
		if err != nil {
			errutil.HandleError(ctx, "fail to parse pull request trigger", err)
			safeWrite(w, webhookErrorStatus(err), []byte(`{"status":"error","message":"invalid trigger"}`))
			return
		}

		input := req.input()
		plan := planOf(input, req.DryRun)
		status, code := "accepted", http.StatusAccepted
		if req.DryRun {
			status, code = "ok", http.StatusOK
		} else {
			go runPullRequestTrigger(DetachContext(ctx), uc, input)
		}

		body, err := json.Marshal(map[string]any{"status": status, "plan": plan})
		if err != nil {
			errutil.HandleError(ctx, "fail to marshal trigger plan", err)
			safeWrite(w, http.StatusInternalServerError, []byte(`{"status":"error"}`))
			return
		}
		safeWrite(w, code, body)
	}
}

// runPullRequestTrigger is run in a background goroutine.
func runPullRequestTrigger(ctx context.Context, uc interfaces.UseCase, input *model.CreatePRsInput) {
	logger := logging.From(ctx).With(slog.Any("branch", input.Branch), slog.Any("author", input.User))
	logger.Info("Creating pull requests from trigger")

	result, err := uc.CreatePullRequests(ctx, input)
	if err != nil {
		errutil.HandleError(ctx, "fail to create pull requests from trigger", err)
		return
	}
	for repo, o := range result {
		if o.Err != nil {
			errutil.HandleError(ctx, "fail to create pull request", goerr.Wrap(o.Err, "create", goerr.V("repo", repo)))
		}
	}
	logger.Info("Pull requests created from trigger", slog.Int("repos", len(result)))
}
