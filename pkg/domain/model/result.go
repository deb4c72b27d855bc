package model

import (
	"sort"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

// BatchOutcome is the result of one repository in a batch operation. Exactly
// one of PullRequest (or Skipped) and Err is meaningful.
type BatchOutcome struct {
	PullRequest *PullRequest `json:"pull_request,omitempty"`
	Skipped     bool         `json:"skipped,omitempty"`
	Err         error        `json:"-"`
}

func (x BatchOutcome) OK() bool { return x.Err == nil }

// BatchResult maps each touched repository to its own outcome. Partial
// failures are recorded here, never returned as an error.
type BatchResult map[types.RepoName]BatchOutcome

func (x BatchResult) Succeeded() []types.RepoName {
	var repos []types.RepoName
	for repo, o := range x {
		if o.OK() {
			repos = append(repos, repo)
		}
	}
	sortRepos(repos)
	return repos
}

func (x BatchResult) Failed() map[types.RepoName]error {
	failed := make(map[types.RepoName]error)
	for repo, o := range x {
		if !o.OK() {
			failed[repo] = o.Err
		}
	}
	return failed
}

func (x BatchResult) HasFailure() bool {
	for _, o := range x {
		if !o.OK() {
			return true
		}
	}
	return false
}

func sortRepos(repos []types.RepoName) {
	sort.Slice(repos, func(i, j int) bool { return repos[i] < repos[j] })
}

// CodeMatch is one code search hit.
type CodeMatch struct {
	Path    string `json:"path"`
	HTMLURL string `json:"html_url"`
}

type SearchResult map[types.RepoName][]CodeMatch
