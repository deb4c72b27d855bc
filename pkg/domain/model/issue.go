package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

// IssueSeparator introduces an issue reference in a branch name, as in
// "fix-login__webapp-42".
const IssueSeparator = "__"

var issueSegment = regexp.MustCompile(`^([A-Za-z0-9._-]+)-([0-9]+)`)

type IssueRef struct {
	Repo   types.RepoName `json:"repo"`
	Number int            `json:"number"`
}

// URL builds the web link of the issue. webBase is e.g. https://github.com.
func (x IssueRef) URL(webBase, org string) string {
	return fmt.Sprintf("%s/%s/%s/issues/%d", strings.TrimRight(webBase, "/"), org, x.Repo, x.Number)
}

// ParseIssueRefs extracts every __<repo>-<number> reference of a branch name.
func ParseIssueRefs(branch types.BranchName) []IssueRef {
	parts := strings.Split(string(branch), IssueSeparator)
	if len(parts) < 2 {
		return nil
	}

	var refs []IssueRef
	for _, part := range parts[1:] {
		m := issueSegment.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		refs = append(refs, IssueRef{Repo: types.RepoName(m[1]), Number: n})
	}
	return refs
}

// PRText is the initial body of a PR opened for branch.
func PRText(refs []IssueRef, webBase, org string) string {
	var b strings.Builder
	b.WriteString("# Issues\n")
	if len(refs) == 0 {
		b.WriteString("\nNo linked issue\n")
		return b.String()
	}
	b.WriteString("\n")
	for _, ref := range refs {
		b.WriteString(" - " + ref.URL(webBase, org) + "\n")
	}
	return b.String()
}
