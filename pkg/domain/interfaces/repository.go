package interfaces

import (
	"context"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

//go:generate moq -out ../mock/credential_repository_mock.go -pkg mock . CredentialRepository

// CredentialRepository stores per-user forge tokens.
type CredentialRepository interface {
	// GetToken returns an empty token and no error when user has none.
	GetToken(ctx context.Context, user types.UserID) (types.GitHubToken, error)
	PutToken(ctx context.Context, user types.UserID, token types.GitHubToken) error
	DeleteToken(ctx context.Context, user types.UserID) error
}
