package types

import "github.com/m-mizutani/goerr/v2"

type CheckState string

const (
	CheckStateSuccess CheckState = "success"
	CheckStatePending CheckState = "pending"
	CheckStateError   CheckState = "error"
	CheckStateFailure CheckState = "failure"
)

// ReviewState follows the values returned by the GitHub reviews API.
type ReviewState string

const (
	ReviewStatePending          ReviewState = "PENDING"
	ReviewStateCommented        ReviewState = "COMMENTED"
	ReviewStateApproved         ReviewState = "APPROVED"
	ReviewStateChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewStateDismissed        ReviewState = "DISMISSED"
)

type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
	PRStateMerged PRState = "merged"
)

type MergeMethod string

const (
	MergeMethodMerge  MergeMethod = "merge"
	MergeMethodSquash MergeMethod = "squash"
	MergeMethodRebase MergeMethod = "rebase"
)

func (x MergeMethod) Validate() error {
	switch x {
	case MergeMethodMerge, MergeMethodSquash, MergeMethodRebase:
		return nil
	}
	return goerr.Wrap(ErrInvalidOption, "invalid merge method", goerr.V("value", x))
}

// WebhookKind selects the deduplication cache a delivery is recorded in.
type WebhookKind string

const (
	WebhookKindOpened WebhookKind = "opened"
	WebhookKindMerged WebhookKind = "merged"
)
