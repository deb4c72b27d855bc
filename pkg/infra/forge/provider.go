package forge

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const DefaultWebBaseURL = "https://github.com"

// Provider resolves which credential a forge call runs with. A user with a
// stored token gets a client of their own; everyone else shares the default
// credential, either a static token or a GitHub App installation.
type Provider struct {
	org        string
	apiBaseURL string
	webBaseURL string

	baseHTTPClient *http.Client
	defaultToken   types.GitHubToken
	app            interfaces.GitHubApp
	installID      types.GitHubAppInstallID
	credentials    interfaces.CredentialRepository

	mu            sync.Mutex
	defaultClient *Client
}

var _ interfaces.ForgeProvider = (*Provider)(nil)

type ProviderOption func(*Provider)

func WithDefaultToken(token types.GitHubToken) ProviderOption {
	return func(x *Provider) {
		x.defaultToken = token
	}
}

func WithGitHubApp(app interfaces.GitHubApp, installID types.GitHubAppInstallID) ProviderOption {
	return func(x *Provider) {
		x.app = app
		x.installID = installID
	}
}

func WithCredentials(repo interfaces.CredentialRepository) ProviderOption {
	return func(x *Provider) {
		x.credentials = repo
	}
}

func WithAPIBaseURL(u string) ProviderOption {
	return func(x *Provider) {
		x.apiBaseURL = u
	}
}

func WithWebBaseURL(u string) ProviderOption {
	return func(x *Provider) {
		if u != "" {
			x.webBaseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// WithHTTPClient sets the transport underneath token authentication.
func WithHTTPClient(client *http.Client) ProviderOption {
	return func(x *Provider) {
		x.baseHTTPClient = client
	}
}

func NewProvider(org string, options ...ProviderOption) (*Provider, error) {
	if org == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}

	x := &Provider{
		org:        org,
		webBaseURL: DefaultWebBaseURL,
	}
	for _, opt := range options {
		opt(x)
	}

	if x.defaultToken == "" && x.app == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "either a GitHub token or a GitHub App is required")
	}
	if x.app != nil && x.installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App installation ID is empty")
	}

	return x, nil
}

func (x *Provider) Organization() string { return x.org }
func (x *Provider) WebBaseURL() string   { return x.webBaseURL }

func (x *Provider) For(ctx context.Context, user types.UserID) (interfaces.Forge, error) {
	if user != "" && x.credentials != nil {
		token, err := x.credentials.GetToken(ctx, user)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to look up user credential", goerr.V("user", user))
		}
		if token != "" {
			logging.From(ctx).Debug("using user credential", slog.Any("user", user))
			client, err := x.newClient(x.tokenHTTPClient(token))
			if err != nil {
				return nil, err
			}
			return client, nil
		}
	}

	client, err := x.defaultForge()
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x *Provider) defaultForge() (*Client, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.defaultClient != nil {
		return x.defaultClient, nil
	}

	var httpClient *http.Client
	if x.defaultToken != "" {
		httpClient = x.tokenHTTPClient(x.defaultToken)
	} else {
		c, err := x.app.HTTPClient(x.installID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build GitHub App client", goerr.V("installID", x.installID))
		}
		httpClient = c
	}

	client, err := x.newClient(httpClient)
	if err != nil {
		return nil, err
	}
	x.defaultClient = client
	return client, nil
}

func (x *Provider) tokenHTTPClient(token types.GitHubToken) *http.Client {
	ctx := context.Background()
	if x.baseHTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, x.baseHTTPClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return oauth2.NewClient(ctx, ts)
}

func (x *Provider) newClient(httpClient *http.Client) (*Client, error) {
	var opts []ClientOption
	if x.apiBaseURL != "" {
		opts = append(opts, WithBaseURL(x.apiBaseURL))
	}
	return New(httpClient, x.org, opts...)
}
