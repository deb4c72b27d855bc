package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

// ReposMarker delimits the generated section at the end of a PR body.
const ReposMarker = "# REPOS"

// SpliceRepoLinks replaces everything after ReposMarker with links, or
// appends the marker and links when the body has none. Applying it twice
// with the same links gives the same body.
func SpliceRepoLinks(body, links string) string {
	head := body
	if idx := strings.Index(body, ReposMarker); idx >= 0 {
		head = body[:idx]
	}
	head = strings.TrimRight(head, " \t\r\n")

	section := ReposMarker + "\n\n" + strings.TrimRight(links, " \t\r\n") + "\n"
	if head == "" {
		return section
	}
	return head + "\n\n" + section
}

// BuildBadge renders a CI status badge in front of each PR link. Both URLs
// accept {repo}, {branch} and {pr} placeholders.
type BuildBadge struct {
	ImageURL string `yaml:"image_url" json:"image_url"`
	LinkURL  string `yaml:"link_url" json:"link_url"`
}

func (x *BuildBadge) render(repo types.RepoName, branch types.BranchName, number int) string {
	if x == nil || x.ImageURL == "" {
		return ""
	}
	r := strings.NewReplacer(
		"{repo}", string(repo),
		"{branch}", string(branch),
		"{pr}", fmt.Sprintf("%d", number),
	)
	link := r.Replace(x.LinkURL)
	if link == "" {
		link = r.Replace(x.ImageURL)
	}
	return fmt.Sprintf("[![Build Status](%s)](%s) ", r.Replace(x.ImageURL), link)
}

// LinkBlock lists the pull requests of view, one line per repository in
// lexical order. Records without a PR are skipped.
func LinkBlock(view AggregatedBranchView, badge *BuildBadge) string {
	var lines []string
	for _, repo := range view.Repos() {
		rec := view[repo]
		if rec.Errored() || rec.PullRequest == nil {
			continue
		}
		pr := rec.PullRequest
		branch := pr.Head
		if rec.Branch != nil {
			branch = rec.Branch.Name
		}
		lines = append(lines, fmt.Sprintf(" * %s[%s PR #%d](%s)",
			badge.render(repo, branch, pr.Number), repo, pr.Number, pr.HTMLURL))
	}
	return strings.Join(lines, "\n")
}
