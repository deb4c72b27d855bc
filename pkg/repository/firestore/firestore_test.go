package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/crossbranch/pkg/repository/firestore"
	"github.com/m-mizutani/crossbranch/pkg/repository/testhelper"
	"github.com/m-mizutani/crossbranch/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestFirestoreCredentialRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID)
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}

func TestToDocID(t *testing.T) {
	id, err := firestore.ToDocID("U123")
	gt.NoError(t, err)
	gt.V(t, id).Equal("U123")

	id, err = firestore.ToDocID("team/U123")
	gt.NoError(t, err)
	gt.V(t, id).Equal("team:U123")

	_, err = firestore.ToDocID("")
	gt.Error(t, err)

	_, err = firestore.ToDocID("team:U123")
	gt.Error(t, err)
}
