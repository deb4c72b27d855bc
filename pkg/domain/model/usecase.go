package model

import (
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// NewPullRequest describes a pull request to open.
type NewPullRequest struct {
	Title string
	Body  string
	Head  types.BranchName
	Base  string
	Draft bool
}

// PRPatch updates a pull request. Nil fields are left untouched.
type PRPatch struct {
	Title *string
	Body  *string
	State *types.PRState
}

// CreatePRsInput is the single request shape for opening PRs across the
// catalog. Empty Base means each repository's default branch; empty Title
// is derived from the branch.
type CreatePRsInput struct {
	BranchQuery
	Base  string
	Title string
	Draft bool
}

func (x *CreatePRsInput) Validate() error {
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	return nil
}

type MergePRsInput struct {
	BranchQuery
	Method types.MergeMethod
	// Force merges repositories even when they are not judged mergeable.
	Force bool
}

func (x *MergePRsInput) Validate() error {
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	if x.Method == "" {
		return nil
	}
	return x.Method.Validate()
}

// PullRequestEvent is the subset of a pull_request webhook the service acts on.
type PullRequestEvent struct {
	Action string
	Repo   types.RepoName
	Number int
	Branch types.BranchName
	Merged bool
	Draft  bool
}

// Kind maps the event to the dedup cache that gates it. Only non-draft
// "opened" and merged "closed" events are acted on.
func (x *PullRequestEvent) Kind() (types.WebhookKind, bool) {
	switch {
	case x.Branch == "":
		return "", false
	case x.Action == "opened" && !x.Draft:
		return types.WebhookKindOpened, true
	case x.Action == "closed" && x.Merged:
		return types.WebhookKindMerged, true
	}
	return "", false
}
