package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type credentialRepository struct {
	mu     sync.RWMutex
	tokens map[types.UserID]types.GitHubToken
}

// New creates a new in-memory credential repository
func New() interfaces.CredentialRepository {
	return &credentialRepository{
		tokens: make(map[types.UserID]types.GitHubToken),
	}
}

func (r *credentialRepository) GetToken(ctx context.Context, user types.UserID) (types.GitHubToken, error) {
	if user == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "user is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tokens[user], nil
}

func (r *credentialRepository) PutToken(ctx context.Context, user types.UserID, token types.GitHubToken) error {
	if user == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "user is empty")
	}
	if token == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "token is empty", goerr.V("user", user))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[user] = token
	return nil
}

func (r *credentialRepository) DeleteToken(ctx context.Context, user types.UserID) error {
	if user == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "user is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, user)
	return nil
}
