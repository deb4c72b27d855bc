package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for CredentialRepository.
// Any CredentialRepository implementation is expected to pass it.
func TestAll(t *testing.T, repo interfaces.CredentialRepository) {
	t.Run("TokenCRUD", func(t *testing.T) {
		TestTokenCRUD(t, repo)
	})
	t.Run("MissingToken", func(t *testing.T) {
		TestMissingToken(t, repo)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, repo)
	})
}

func newUserID() types.UserID {
	return types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))
}

func TestTokenCRUD(t *testing.T, repo interfaces.CredentialRepository) {
	ctx := context.Background()
	user := newUserID()

	gt.NoError(t, repo.PutToken(ctx, user, "ghp_first"))
	token, err := repo.GetToken(ctx, user)
	gt.NoError(t, err)
	gt.V(t, token).Equal(types.GitHubToken("ghp_first"))

	// overwrite
	gt.NoError(t, repo.PutToken(ctx, user, "ghp_second"))
	token, err = repo.GetToken(ctx, user)
	gt.NoError(t, err)
	gt.V(t, token).Equal(types.GitHubToken("ghp_second"))

	// tokens are per user
	other := newUserID()
	token, err = repo.GetToken(ctx, other)
	gt.NoError(t, err)
	gt.V(t, token).Equal(types.GitHubToken(""))

	gt.NoError(t, repo.DeleteToken(ctx, user))
	token, err = repo.GetToken(ctx, user)
	gt.NoError(t, err)
	gt.V(t, token).Equal(types.GitHubToken(""))
}

func TestMissingToken(t *testing.T, repo interfaces.CredentialRepository) {
	ctx := context.Background()
	user := newUserID()

	token, err := repo.GetToken(ctx, user)
	gt.NoError(t, err)
	gt.V(t, token).Equal(types.GitHubToken(""))

	// deleting a missing token succeeds
	gt.NoError(t, repo.DeleteToken(ctx, user))
}

func TestInvalidInput(t *testing.T, repo interfaces.CredentialRepository) {
	ctx := context.Background()

	_, err := repo.GetToken(ctx, "")
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	err = repo.PutToken(ctx, "", "ghp_x")
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	err = repo.PutToken(ctx, newUserID(), "")
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	err = repo.DeleteToken(ctx, "")
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}
