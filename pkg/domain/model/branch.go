package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

// BranchQuery selects a branch across the catalog. User picks the stored
// credential for forge calls; empty means the default credential.
type BranchQuery struct {
	Branch types.BranchName `json:"branch"`
	User   types.UserID     `json:"user,omitempty"`
}

type BranchRef struct {
	Name types.BranchName `json:"name"`
	SHA  string           `json:"sha"`
}

type StatusCheck struct {
	Context   string           `json:"context"`
	State     types.CheckState `json:"state"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type Review struct {
	Reviewer    string            `json:"reviewer,omitempty"`
	State       types.ReviewState `json:"state"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

type PullRequest struct {
	Number  int              `json:"number"`
	State   types.PRState    `json:"state"`
	Title   string           `json:"title"`
	Body    string           `json:"body"`
	HTMLURL string           `json:"html_url"`
	Head    types.BranchName `json:"head"`
	Base    string           `json:"base"`
	Draft   bool             `json:"draft"`
}

// RepoBranchRecord is what one repository knows about a branch. A record
// with Err set is present in the repository but could not be read.
type RepoBranchRecord struct {
	Repo         types.RepoName `json:"repo"`
	Branch       *BranchRef     `json:"branch,omitempty"`
	StatusChecks []StatusCheck  `json:"status_checks,omitempty"`
	PullRequest  *PullRequest   `json:"pull_request,omitempty"`
	Reviews      []Review       `json:"reviews,omitempty"`
	Status       StatusSummary  `json:"status"`
	Review       ReviewSummary  `json:"review"`
	Mergeable    bool           `json:"mergeable"`
	Err          error          `json:"-"`
}

func (x *RepoBranchRecord) Errored() bool {
	return x.Err != nil
}

func (x *RepoBranchRecord) HasOpenPR() bool {
	return x.Err == nil && x.PullRequest != nil && x.PullRequest.State == types.PRStateOpen
}

// AggregatedBranchView holds only repositories where the branch exists.
type AggregatedBranchView map[types.RepoName]*RepoBranchRecord

// Repos returns repository names in lexical order.
func (x AggregatedBranchView) Repos() []types.RepoName {
	repos := make([]types.RepoName, 0, len(x))
	for repo := range x {
		repos = append(repos, repo)
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i] < repos[j] })
	return repos
}

func (x AggregatedBranchView) Errored() map[types.RepoName]error {
	errs := make(map[types.RepoName]error)
	for repo, rec := range x {
		if rec.Errored() {
			errs[repo] = rec.Err
		}
	}
	return errs
}

func (x AggregatedBranchView) Mergeable() bool {
	if len(x) == 0 {
		return false
	}
	for _, rec := range x {
		if !rec.Mergeable {
			return false
		}
	}
	return true
}
