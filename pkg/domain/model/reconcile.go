package model

import (
	"sort"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

type StatusSummary struct {
	// Checks has one entry per required context, or every reported context
	// when no required set is configured.
	Checks []StatusCheck `json:"checks"`
	AllOK  bool          `json:"all_ok"`
}

type ReviewSummary struct {
	Counts   map[types.ReviewState]int `json:"counts"`
	Approved bool                      `json:"approved"`
	// Latest is the most recent review state, for display only.
	Latest types.ReviewState `json:"latest,omitempty"`
	// RetractedApproval flags an approval followed by a later change request.
	// Approval still counts in that case.
	RetractedApproval bool `json:"retracted_approval,omitempty"`
}

type Reconciliation struct {
	Status    StatusSummary
	Review    ReviewSummary
	Mergeable bool
}

// LatestStatusChecks keeps the most recently updated check per context. When
// two records of a context share a timestamp, the later one in the input wins.
// The result is ordered by update time descending, then by context.
func LatestStatusChecks(checks []StatusCheck) []StatusCheck {
	latest := make(map[string]StatusCheck, len(checks))
	for _, c := range checks {
		if prev, ok := latest[c.Context]; ok && c.UpdatedAt.Before(prev.UpdatedAt) {
			continue
		}
		latest[c.Context] = c
	}

	result := make([]StatusCheck, 0, len(latest))
	for _, c := range latest {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].UpdatedAt.After(result[j].UpdatedAt)
		}
		return result[i].Context < result[j].Context
	})
	return result
}

func summarizeStatus(checks []StatusCheck, required []string) StatusSummary {
	latest := LatestStatusChecks(checks)

	if len(required) == 0 {
		summary := StatusSummary{Checks: latest, AllOK: len(latest) > 0}
		for _, c := range latest {
			if c.State != types.CheckStateSuccess {
				summary.AllOK = false
			}
		}
		return summary
	}

	byContext := make(map[string]StatusCheck, len(latest))
	for _, c := range latest {
		byContext[c.Context] = c
	}

	summary := StatusSummary{AllOK: true}
	for _, name := range required {
		c, ok := byContext[name]
		if !ok {
			c = StatusCheck{Context: name, State: types.CheckStatePending}
		}
		if c.State != types.CheckStateSuccess {
			summary.AllOK = false
		}
		summary.Checks = append(summary.Checks, c)
	}
	return summary
}

func summarizeReviews(reviews []Review) ReviewSummary {
	summary := ReviewSummary{Counts: make(map[types.ReviewState]int)}

	var latest *Review
	for i := range reviews {
		r := &reviews[i]
		summary.Counts[r.State]++
		if r.State == types.ReviewStateApproved {
			summary.Approved = true
		}
		if latest == nil || !r.SubmittedAt.Before(latest.SubmittedAt) {
			latest = r
		}
	}

	if latest != nil {
		summary.Latest = latest.State
		summary.RetractedApproval = summary.Approved && latest.State == types.ReviewStateChangesRequested
	}
	return summary
}

// Reconcile collapses the raw checks and reviews of one repository into a
// mergeability verdict. It has no side effects.
func Reconcile(checks []StatusCheck, reviews []Review, pr *PullRequest, required []string) Reconciliation {
	status := summarizeStatus(checks, required)
	review := summarizeReviews(reviews)

	return Reconciliation{
		Status:    status,
		Review:    review,
		Mergeable: status.AllOK && review.Approved && pr != nil,
	}
}
