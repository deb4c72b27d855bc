package ghapp_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/infra/ghapp"
	"github.com/m-mizutani/crossbranch/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new GitHub App client with valid inputs", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("test-key")

		_, err := ghapp.New(appID, privateKey)
		gt.NoError(t, err)
	})

	t.Run("create with empty private key fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), "")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("create with zero app ID fails", func(t *testing.T) {
		client, err := ghapp.New(0, types.GitHubAppPrivateKey("test-key"))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("HTTPClient returns error with invalid key", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), "invalid-key",
			ghapp.WithBaseURL("https://ghe.example.com/api/v3/"),
		)
		gt.NoError(t, err)

		httpClient, err := client.HTTPClient(types.GitHubAppInstallID(67890))
		gt.Error(t, err)
		gt.V(t, httpClient).Equal(nil)
	})

	t.Run("installation lookup fails with invalid key", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), "invalid-key")
		gt.NoError(t, err)

		_, err = client.FindOrganizationInstallation(context.Background(), "acme")
		gt.Error(t, err)
	})
}

func TestFindOrganizationInstallation_Integration(t *testing.T) {
	appIDStr := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_ID")
	privateKey := testutil.GetEnvOrSkip(t, "TEST_GITHUB_PRIVATE_KEY")
	org := testutil.GetEnvOrSkip(t, "TEST_GITHUB_ORG")

	appID, err := strconv.ParseInt(appIDStr, 10, 64)
	gt.NoError(t, err)

	client, err := ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(privateKey))
	gt.NoError(t, err)

	ctx := context.Background()
	installID, err := client.FindOrganizationInstallation(ctx, org)
	gt.NoError(t, err)
	gt.V(t, installID).NotEqual(types.GitHubAppInstallID(0))

	httpClient, err := client.HTTPClient(installID)
	gt.NoError(t, err)
	gt.V(t, httpClient).NotEqual(nil)
}
