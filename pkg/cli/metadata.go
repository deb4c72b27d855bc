package cli

import (
	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// CurrentBranch returns the branch checked out in the git repository that
// contains dir.
func CurrentBranch(dir string) (types.BranchName, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	head, err := repo.Head()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get HEAD")
	}

	if !head.Name().IsBranch() {
		return "", goerr.Wrap(types.ErrInvalidOption, "HEAD is detached, specify a branch",
			goerr.V("head", head.Hash().String()),
		)
	}

	return types.BranchName(head.Name().Short()), nil
}
