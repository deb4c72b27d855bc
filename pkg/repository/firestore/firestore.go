package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionCredential = "credential"

type credentialRepository struct {
	client *firestore.Client
}

type credentialDoc struct {
	User      string    `firestore:"user"`
	Token     string    `firestore:"token"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// New creates a new Firestore-based credential repository
func New(ctx context.Context, projectID, databaseID string) (interfaces.CredentialRepository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &credentialRepository{
		client: client,
	}, nil
}

// ToDocID converts a chat user ID to a Firestore-safe document ID. "/" is
// not allowed in document IDs, so it is replaced with ":".
func ToDocID(user types.UserID) (string, error) {
	if user == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "user is empty")
	}
	if strings.Contains(string(user), ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "user contains invalid character ':'",
			goerr.V("user", user),
		)
	}
	return strings.ReplaceAll(string(user), "/", ":"), nil
}

func (r *credentialRepository) GetToken(ctx context.Context, user types.UserID) (types.GitHubToken, error) {
	docID, err := ToDocID(user)
	if err != nil {
		return "", err
	}

	snap, err := r.client.Collection(collectionCredential).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to get credential", goerr.V("user", user))
	}

	var doc credentialDoc
	if err := snap.DataTo(&doc); err != nil {
		return "", goerr.Wrap(err, "failed to decode credential", goerr.V("user", user))
	}
	return types.GitHubToken(doc.Token), nil
}

func (r *credentialRepository) PutToken(ctx context.Context, user types.UserID, token types.GitHubToken) error {
	docID, err := ToDocID(user)
	if err != nil {
		return err
	}
	if token == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "token is empty", goerr.V("user", user))
	}

	doc := credentialDoc{
		User:      string(user),
		Token:     string(token),
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := r.client.Collection(collectionCredential).Doc(docID).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put credential", goerr.V("user", user))
	}
	return nil
}

func (r *credentialRepository) DeleteToken(ctx context.Context, user types.UserID) error {
	docID, err := ToDocID(user)
	if err != nil {
		return err
	}

	// Deleting a missing document is not an error in Firestore.
	if _, err := r.client.Collection(collectionCredential).Doc(docID).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete credential", goerr.V("user", user))
	}
	return nil
}
