package infra_test

import (
	"testing"

	"github.com/m-mizutani/crossbranch/pkg/domain/mock"
	"github.com/m-mizutani/crossbranch/pkg/infra"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.Catalog()).Equal(nil)
		gt.V(t, clients.Forges()).Equal(nil)
		gt.V(t, clients.Credentials()).Equal(nil)
	})

	t.Run("WithCatalog option sets catalog", func(t *testing.T) {
		mockCatalog := &mock.CatalogMock{}
		clients := infra.New(infra.WithCatalog(mockCatalog))
		gt.V(t, clients.Catalog()).Equal(mockCatalog)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockCatalog := &mock.CatalogMock{}
		mockForges := &mock.ForgeProviderMock{}
		mockCreds := &mock.CredentialRepositoryMock{}

		clients := infra.New(
			infra.WithCatalog(mockCatalog),
			infra.WithForges(mockForges),
			infra.WithCredentials(mockCreds),
		)

		gt.V(t, clients.Catalog()).Equal(mockCatalog)
		gt.V(t, clients.Forges()).Equal(mockForges)
		gt.V(t, clients.Credentials()).Equal(mockCreds)
	})
}
