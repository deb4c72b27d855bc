package forge

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

// Classify maps a go-github error onto exactly one forge error kind.
func Classify(op string, repo types.RepoName, err error) error {
	if err == nil {
		return nil
	}

	var already *types.ForgeError
	if errors.As(err, &already) {
		return err
	}

	return &types.ForgeError{
		Kind: kindOf(err),
		Repo: repo,
		Op:   op,
		Err:  err,
	}
}

func kindOf(err error) types.ErrorKind {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return types.ErrorKindRateLimited
	}

	var respErr *github.ErrorResponse
	if !errors.As(err, &respErr) || respErr.Response == nil {
		return types.ErrorKindOther
	}

	switch respErr.Response.StatusCode {
	case http.StatusNotFound:
		return types.ErrorKindNotFound
	case http.StatusUnauthorized:
		return types.ErrorKindUnauthorized
	case http.StatusTooManyRequests:
		return types.ErrorKindRateLimited
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(respErr.Message), "rate limit") {
			return types.ErrorKindRateLimited
		}
		return types.ErrorKindUnauthorized
	}
	return types.ErrorKindOther
}
