package forge

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const perPage = 100

// Client implements interfaces.Forge for one organization on GitHub.
type Client struct {
	gh  *github.Client
	org string
}

var _ interfaces.Forge = (*Client)(nil)

type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL string
}

// WithBaseURL points the client at a GitHub Enterprise or test API endpoint,
// e.g. https://ghe.example.com/api/v3/.
func WithBaseURL(baseURL string) ClientOption {
	return func(cfg *clientConfig) {
		cfg.baseURL = baseURL
	}
}

func New(httpClient *http.Client, org string, options ...ClientOption) (*Client, error) {
	if org == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}

	cfg := &clientConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	gh := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(cfg.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh, org: org}, nil
}

func (x *Client) GetBranch(ctx context.Context, repo types.RepoName, branch types.BranchName) (*model.BranchRef, error) {
	logging.From(ctx).Debug("GitHub API: get branch", slog.Any("repo", repo), slog.Any("branch", branch))

	ref, _, err := x.gh.Git.GetRef(ctx, x.org, string(repo), "heads/"+string(branch))
	if err != nil {
		return nil, Classify("get_branch", repo, err)
	}

	return &model.BranchRef{
		Name: branch,
		SHA:  ref.GetObject().GetSHA(),
	}, nil
}

func (x *Client) ListStatusChecks(ctx context.Context, repo types.RepoName, ref string) ([]model.StatusCheck, error) {
	logging.From(ctx).Debug("GitHub API: list statuses", slog.Any("repo", repo), slog.String("ref", ref))

	var checks []model.StatusCheck
	opts := &github.ListOptions{PerPage: perPage}
	for {
		statuses, resp, err := x.gh.Repositories.ListStatuses(ctx, x.org, string(repo), ref, opts)
		if err != nil {
			return nil, Classify("list_statuses", repo, err)
		}

		for _, s := range statuses {
			checks = append(checks, model.StatusCheck{
				Context:   s.GetContext(),
				State:     types.CheckState(s.GetState()),
				UpdatedAt: s.GetUpdatedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return checks, nil
}

func (x *Client) FindOpenPullRequest(ctx context.Context, repo types.RepoName, branch types.BranchName) (*model.PullRequest, error) {
	logging.From(ctx).Debug("GitHub API: find open PR", slog.Any("repo", repo), slog.Any("branch", branch))

	opts := &github.PullRequestListOptions{
		State:       "open",
		Head:        x.org + ":" + string(branch),
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	for {
		pulls, resp, err := x.gh.PullRequests.List(ctx, x.org, string(repo), opts)
		if err != nil {
			return nil, Classify("list_pulls", repo, err)
		}

		for _, pr := range pulls {
			if pr.GetHead().GetRef() == string(branch) {
				return toPullRequest(pr), nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return nil, nil
}

func (x *Client) ListReviews(ctx context.Context, repo types.RepoName, pr *model.PullRequest) ([]model.Review, error) {
	reviews := []model.Review{}
	if pr == nil {
		return reviews, nil
	}
	logging.From(ctx).Debug("GitHub API: list reviews", slog.Any("repo", repo), slog.Int("number", pr.Number))

	opts := &github.ListOptions{PerPage: perPage}
	for {
		list, resp, err := x.gh.PullRequests.ListReviews(ctx, x.org, string(repo), pr.Number, opts)
		if err != nil {
			return nil, Classify("list_reviews", repo, err)
		}

		for _, r := range list {
			reviews = append(reviews, model.Review{
				Reviewer:    r.GetUser().GetLogin(),
				State:       types.ReviewState(r.GetState()),
				SubmittedAt: r.GetSubmittedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return reviews, nil
}

func (x *Client) CreatePullRequest(ctx context.Context, repo types.RepoName, req model.NewPullRequest) (*model.PullRequest, error) {
	logging.From(ctx).Info("GitHub API: create PR",
		slog.Any("repo", repo),
		slog.Any("head", req.Head),
		slog.String("base", req.Base),
		slog.Bool("draft", req.Draft),
	)

	pr, _, err := x.gh.PullRequests.Create(ctx, x.org, string(repo), &github.NewPullRequest{
		Title: github.String(req.Title),
		Head:  github.String(string(req.Head)),
		Base:  github.String(req.Base),
		Body:  github.String(req.Body),
		Draft: github.Bool(req.Draft),
	})
	if err != nil {
		return nil, Classify("create", repo, err)
	}

	return toPullRequest(pr), nil
}

func (x *Client) UpdatePullRequest(ctx context.Context, repo types.RepoName, number int, patch model.PRPatch) (*model.PullRequest, error) {
	return x.editPullRequest(ctx, "update", repo, number, patch)
}

func (x *Client) editPullRequest(ctx context.Context, op string, repo types.RepoName, number int, patch model.PRPatch) (*model.PullRequest, error) {
	logging.From(ctx).Debug("GitHub API: edit PR", slog.String("op", op), slog.Any("repo", repo), slog.Int("number", number))

	edit := &github.PullRequest{
		Title: patch.Title,
		Body:  patch.Body,
	}
	if patch.State != nil {
		if *patch.State == types.PRStateMerged {
			return nil, &types.ForgeError{
				Kind: types.ErrorKindOther,
				Repo: repo,
				Op:   op,
				Err:  goerr.Wrap(types.ErrInvalidOption, "PR state cannot be set to merged by edit"),
			}
		}
		edit.State = github.String(string(*patch.State))
	}

	pr, _, err := x.gh.PullRequests.Edit(ctx, x.org, string(repo), number, edit)
	if err != nil {
		return nil, Classify(op, repo, err)
	}
	return toPullRequest(pr), nil
}

func (x *Client) MergePullRequest(ctx context.Context, repo types.RepoName, number int, method types.MergeMethod) error {
	logging.From(ctx).Info("GitHub API: merge PR", slog.Any("repo", repo), slog.Int("number", number), slog.Any("method", method))

	result, _, err := x.gh.PullRequests.Merge(ctx, x.org, string(repo), number, "", &github.PullRequestOptions{
		MergeMethod: string(method),
	})
	if err != nil {
		return Classify("merge", repo, err)
	}
	if !result.GetMerged() {
		return &types.ForgeError{
			Kind: types.ErrorKindOther,
			Repo: repo,
			Op:   "merge",
			Err:  goerr.New("pull request was not merged", goerr.V("message", result.GetMessage())),
		}
	}
	return nil
}

func (x *Client) ClosePullRequest(ctx context.Context, repo types.RepoName, number int) error {
	closed := types.PRStateClosed
	_, err := x.editPullRequest(ctx, "close", repo, number, model.PRPatch{State: &closed})
	return err
}

func (x *Client) DeleteBranch(ctx context.Context, repo types.RepoName, branch types.BranchName) error {
	logging.From(ctx).Info("GitHub API: delete branch", slog.Any("repo", repo), slog.Any("branch", branch))

	if _, err := x.gh.Git.DeleteRef(ctx, x.org, string(repo), "heads/"+string(branch)); err != nil {
		return Classify("delete_branch", repo, err)
	}
	return nil
}

func (x *Client) CommentPullRequest(ctx context.Context, repo types.RepoName, number int, body string) error {
	logging.From(ctx).Debug("GitHub API: comment PR", slog.Any("repo", repo), slog.Int("number", number))

	if _, _, err := x.gh.Issues.CreateComment(ctx, x.org, string(repo), number, &github.IssueComment{
		Body: github.String(body),
	}); err != nil {
		return Classify("comment", repo, err)
	}
	return nil
}

func (x *Client) GetDefaultBranch(ctx context.Context, repo types.RepoName) (string, error) {
	r, _, err := x.gh.Repositories.Get(ctx, x.org, string(repo))
	if err != nil {
		return "", Classify("get_repository", repo, err)
	}
	return r.GetDefaultBranch(), nil
}

func (x *Client) GetIssueTitle(ctx context.Context, repo types.RepoName, number int) (string, error) {
	issue, _, err := x.gh.Issues.Get(ctx, x.org, string(repo), number)
	if err != nil {
		return "", Classify("get_issue", repo, err)
	}
	return issue.GetTitle(), nil
}

// SearchCode runs a code search restricted to the organization.
func (x *Client) SearchCode(ctx context.Context, query string) (model.SearchResult, error) {
	q := fmt.Sprintf("%s org:%s", query, x.org)
	logging.From(ctx).Debug("GitHub API: search code", slog.String("query", q))

	result := model.SearchResult{}
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: perPage}}
	for {
		found, resp, err := x.gh.Search.Code(ctx, q, opts)
		if err != nil {
			return nil, Classify("search", "", err)
		}

		for _, c := range found.CodeResults {
			repo := types.RepoName(c.GetRepository().GetName())
			result[repo] = append(result[repo], model.CodeMatch{
				Path:    c.GetPath(),
				HTMLURL: c.GetHTMLURL(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

func toPullRequest(pr *github.PullRequest) *model.PullRequest {
	state := types.PRState(pr.GetState())
	if pr.GetMerged() || pr.MergedAt != nil {
		state = types.PRStateMerged
	}

	return &model.PullRequest{
		Number:  pr.GetNumber(),
		State:   state,
		Title:   pr.GetTitle(),
		Body:    pr.GetBody(),
		HTMLURL: pr.GetHTMLURL(),
		Head:    types.BranchName(pr.GetHead().GetRef()),
		Base:    pr.GetBase().GetRef(),
		Draft:   pr.GetDraft(),
	}
}
