package forge_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/infra/forge"
	"github.com/m-mizutani/gt"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *forge.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := forge.New(srv.Client(), "acme", forge.WithBaseURL(srv.URL))
	gt.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew(t *testing.T) {
	_, err := forge.New(http.DefaultClient, "")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestGetBranch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/api/git/ref/heads/feature-x", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ref":    "refs/heads/feature-x",
			"object": map[string]any{"sha": "abc123", "type": "commit"},
		})
	})
	mux.HandleFunc("GET /repos/acme/web/git/ref/heads/feature-x", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("existing branch", func(t *testing.T) {
		ref, err := client.GetBranch(ctx, "api", "feature-x")
		gt.NoError(t, err)
		gt.V(t, ref.SHA).Equal("abc123")
		gt.V(t, ref.Name).Equal(types.BranchName("feature-x"))
	})

	t.Run("missing branch is classified as not found", func(t *testing.T) {
		_, err := client.GetBranch(ctx, "web", "feature-x")
		gt.True(t, errors.Is(err, types.ErrNotFound))

		var fe *types.ForgeError
		gt.True(t, errors.As(err, &fe))
		gt.V(t, fe.Repo).Equal(types.RepoName("web"))
		gt.V(t, fe.Op).Equal("get_branch")
	})
}

func TestErrorClassification(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		header map[string]string
		body   map[string]any
		expect error
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   map[string]any{"message": "Bad credentials"},
			expect: types.ErrUnauthorized,
		},
		{
			name:   "primary rate limit",
			status: http.StatusForbidden,
			header: map[string]string{"X-RateLimit-Remaining": "0"},
			body:   map[string]any{"message": "API rate limit exceeded for user ID 1."},
			expect: types.ErrRateLimited,
		},
		{
			name:   "secondary rate limit",
			status: http.StatusForbidden,
			body: map[string]any{
				"message":           "You have exceeded a secondary rate limit.",
				"documentation_url": "https://docs.github.com/rest/overview/resources-in-the-rest-api#secondary-rate-limits",
			},
			expect: types.ErrRateLimited,
		},
		{
			name:   "too many requests",
			status: http.StatusTooManyRequests,
			body:   map[string]any{"message": "slow down"},
			expect: types.ErrRateLimited,
		},
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			body:   map[string]any{"message": "Resource not accessible by integration"},
			expect: types.ErrUnauthorized,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   map[string]any{"message": "oops"},
			expect: types.ErrForgeFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /repos/acme/api/commits/main/statuses", func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tc.header {
					w.Header().Set(k, v)
				}
				writeJSON(w, tc.status, tc.body)
			})
			client := newTestClient(t, mux)

			_, err := client.ListStatusChecks(context.Background(), "api", "main")
			gt.Error(t, err)
			gt.True(t, errors.Is(err, tc.expect))
		})
	}
}

func TestListStatusChecks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/api/commits/abc123/statuses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"context": "lint", "state": "success", "updated_at": "2024-05-01T10:00:00Z"},
			{"context": "unit-tests", "state": "pending", "updated_at": "2024-05-01T10:01:00Z"},
		})
	})
	client := newTestClient(t, mux)

	checks, err := client.ListStatusChecks(context.Background(), "api", "abc123")
	gt.NoError(t, err)
	gt.V(t, len(checks)).Equal(2)
	gt.V(t, checks[0].Context).Equal("lint")
	gt.V(t, checks[0].State).Equal(types.CheckStateSuccess)
	gt.V(t, checks[1].UpdatedAt.Minute()).Equal(1)
}

func TestFindOpenPullRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/api/pulls", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("state")).Equal("open")
		writeJSON(w, http.StatusOK, []map[string]any{
			{"number": 4, "state": "open", "head": map[string]any{"ref": "other"}},
			{
				"number":   9,
				"state":    "open",
				"title":    "feature",
				"body":     "hello",
				"html_url": "https://github.com/acme/api/pull/9",
				"head":     map[string]any{"ref": "feature-x"},
				"base":     map[string]any{"ref": "main"},
			},
		})
	})
	mux.HandleFunc("GET /repos/acme/web/pulls", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{})
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("matching head ref", func(t *testing.T) {
		pr, err := client.FindOpenPullRequest(ctx, "api", "feature-x")
		gt.NoError(t, err)
		gt.V(t, pr.Number).Equal(9)
		gt.V(t, pr.State).Equal(types.PRStateOpen)
		gt.V(t, pr.Base).Equal("main")
		gt.V(t, pr.HTMLURL).Equal("https://github.com/acme/api/pull/9")
	})

	t.Run("no pull request returns nil without error", func(t *testing.T) {
		pr, err := client.FindOpenPullRequest(ctx, "web", "feature-x")
		gt.NoError(t, err)
		gt.V(t, pr).Equal(nil)
	})
}

func TestListReviews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/api/pulls/9/reviews", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"state": "APPROVED", "submitted_at": "2024-05-01T10:00:00Z", "user": map[string]any{"login": "alice"}},
		})
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("nil PR yields empty reviews", func(t *testing.T) {
		reviews, err := client.ListReviews(ctx, "api", nil)
		gt.NoError(t, err)
		gt.V(t, len(reviews)).Equal(0)
	})

	t.Run("lists reviews", func(t *testing.T) {
		reviews, err := client.ListReviews(ctx, "api", &model.PullRequest{Number: 9})
		gt.NoError(t, err)
		gt.V(t, len(reviews)).Equal(1)
		gt.V(t, reviews[0].State).Equal(types.ReviewStateApproved)
		gt.V(t, reviews[0].Reviewer).Equal("alice")
	})
}

func TestMutations(t *testing.T) {
	var (
		mergeMethod string
		closedState string
		deleted     bool
		createBody  map[string]any
	)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /repos/acme/api/pulls/9/merge", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		mergeMethod, _ = req["merge_method"].(string)
		writeJSON(w, http.StatusOK, map[string]any{"merged": true, "sha": "def"})
	})
	mux.HandleFunc("PUT /repos/acme/web/pulls/3/merge", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"message": "Pull Request is not mergeable"})
	})
	mux.HandleFunc("PATCH /repos/acme/api/pulls/9", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		closedState, _ = req["state"].(string)
		writeJSON(w, http.StatusOK, map[string]any{"number": 9, "state": "closed"})
	})
	mux.HandleFunc("DELETE /repos/acme/api/git/refs/heads/feature-x", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /repos/acme/api/pulls", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &createBody)
		writeJSON(w, http.StatusCreated, map[string]any{
			"number": 10, "state": "open", "html_url": "https://github.com/acme/api/pull/10",
			"head": map[string]any{"ref": "feature-x"}, "base": map[string]any{"ref": "main"},
		})
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("merge with method", func(t *testing.T) {
		gt.NoError(t, client.MergePullRequest(ctx, "api", 9, types.MergeMethodSquash))
		gt.V(t, mergeMethod).Equal("squash")
	})

	t.Run("merge rejected is classified as other", func(t *testing.T) {
		err := client.MergePullRequest(ctx, "web", 3, types.MergeMethodSquash)
		gt.True(t, errors.Is(err, types.ErrForgeFailure))
	})

	t.Run("close edits state", func(t *testing.T) {
		gt.NoError(t, client.ClosePullRequest(ctx, "api", 9))
		gt.V(t, closedState).Equal("closed")
	})

	t.Run("delete branch", func(t *testing.T) {
		gt.NoError(t, client.DeleteBranch(ctx, "api", "feature-x"))
		gt.True(t, deleted)
	})

	t.Run("create PR", func(t *testing.T) {
		pr, err := client.CreatePullRequest(ctx, "api", model.NewPullRequest{
			Title: "feature-x",
			Head:  "feature-x",
			Base:  "main",
			Body:  "body",
			Draft: true,
		})
		gt.NoError(t, err)
		gt.V(t, pr.Number).Equal(10)
		gt.V(t, createBody["head"]).Equal(any("feature-x"))
		gt.V(t, createBody["draft"]).Equal(any(true))
	})

	t.Run("state merged cannot be set by update", func(t *testing.T) {
		merged := types.PRStateMerged
		_, err := client.UpdatePullRequest(ctx, "api", 9, model.PRPatch{State: &merged})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestSearchCode(t *testing.T) {
	var query string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search/code", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("q")
		writeJSON(w, http.StatusOK, map[string]any{
			"total_count": 3,
			"items": []map[string]any{
				{"path": "a.go", "html_url": "https://x/a.go", "repository": map[string]any{"name": "api"}},
				{"path": "b.go", "html_url": "https://x/b.go", "repository": map[string]any{"name": "api"}},
				{"path": "c.js", "html_url": "https://x/c.js", "repository": map[string]any{"name": "web"}},
			},
		})
	})
	client := newTestClient(t, mux)

	result, err := client.SearchCode(context.Background(), `"ISSUE-42"`)
	gt.NoError(t, err)
	gt.S(t, query).Contains("org:acme")
	gt.V(t, len(result["api"])).Equal(2)
	gt.V(t, result["web"][0].Path).Equal("c.js")
}
