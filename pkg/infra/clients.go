package infra

import (
	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
)

type Clients struct {
	catalog     interfaces.Catalog
	forges      interfaces.ForgeProvider
	credentials interfaces.CredentialRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Catalog() interfaces.Catalog {
	return x.catalog
}
func (x *Clients) Forges() interfaces.ForgeProvider {
	return x.forges
}
func (x *Clients) Credentials() interfaces.CredentialRepository {
	return x.credentials
}

func WithCatalog(catalog interfaces.Catalog) Option {
	return func(x *Clients) {
		x.catalog = catalog
	}
}

func WithForges(provider interfaces.ForgeProvider) Option {
	return func(x *Clients) {
		x.forges = provider
	}
}

func WithCredentials(repo interfaces.CredentialRepository) Option {
	return func(x *Clients) {
		x.credentials = repo
	}
}
