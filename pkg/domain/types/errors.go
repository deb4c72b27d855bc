package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption      = goerr.New("invalid option")
	ErrValidationFailed   = goerr.New("validation failed")
	ErrCatalogUnavailable = goerr.New("repository catalog unavailable")

	// Forge error kinds. A *ForgeError matches exactly one of them with errors.Is.
	ErrNotFound     = goerr.New("not found")
	ErrRateLimited  = goerr.New("rate limited")
	ErrUnauthorized = goerr.New("unauthorized")
	ErrForgeFailure = goerr.New("forge request failed")

	ErrPartialFailure = goerr.New("partial failure")
)

type ErrorKind int

const (
	ErrorKindOther ErrorKind = iota
	ErrorKindNotFound
	ErrorKindRateLimited
	ErrorKindUnauthorized
)

func (x ErrorKind) String() string {
	switch x {
	case ErrorKindNotFound:
		return "not_found"
	case ErrorKindRateLimited:
		return "rate_limited"
	case ErrorKindUnauthorized:
		return "unauthorized"
	default:
		return "other"
	}
}

// ForgeError is a classified failure of a single forge call. Op names the
// primitive that failed (get_branch, create, merge, search, ...).
type ForgeError struct {
	Kind ErrorKind
	Repo RepoName
	Op   string
	Err  error
}

func (x *ForgeError) Error() string {
	target := string(x.Repo)
	if target == "" {
		target = "*"
	}
	if x.Err == nil {
		return fmt.Sprintf("%s %s: %s", x.Op, target, x.Kind)
	}
	return fmt.Sprintf("%s %s: %s: %s", x.Op, target, x.Kind, x.Err.Error())
}

func (x *ForgeError) Unwrap() error { return x.Err }

func (x *ForgeError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return x.Kind == ErrorKindNotFound
	case ErrRateLimited:
		return x.Kind == ErrorKindRateLimited
	case ErrUnauthorized:
		return x.Kind == ErrorKindUnauthorized
	case ErrForgeFailure:
		return x.Kind == ErrorKindOther
	}
	return false
}

// PartialFailureError reports a best-effort batch where at least one
// repository failed.
type PartialFailureError struct {
	Succeeded []RepoName
	Failed    map[RepoName]error
}

func (x *PartialFailureError) Error() string {
	repos := make([]string, 0, len(x.Failed))
	for repo := range x.Failed {
		repos = append(repos, string(repo))
	}
	sort.Strings(repos)

	msgs := make([]string, len(repos))
	for i, repo := range repos {
		msgs[i] = fmt.Sprintf("%s: %v", repo, x.Failed[RepoName(repo)])
	}
	return fmt.Sprintf("partial failure (%d succeeded, %d failed): %s",
		len(x.Succeeded), len(x.Failed), strings.Join(msgs, "; "))
}

func (x *PartialFailureError) Is(target error) bool {
	return target == ErrPartialFailure
}
