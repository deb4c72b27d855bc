package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type Client struct {
	appID   types.GitHubAppID
	pem     types.GitHubAppPrivateKey
	baseURL string
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

// WithBaseURL sets the GitHub API endpoint for Enterprise Server installs.
func WithBaseURL(u string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(u, "/")
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// HTTPClient returns a client authenticated as the given installation. Tokens
// are refreshed by the transport.
func (x *Client) HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github client", goerr.V("installID", installID))
	}
	if x.baseURL != "" {
		itr.BaseURL = x.baseURL
	}

	return &http.Client{Transport: itr}, nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.NewAppsTransport(tr, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}

	client := github.NewClient(&http.Client{Transport: itr})
	if x.baseURL != "" {
		itr.BaseURL = x.baseURL
		u, err := url.Parse(x.baseURL + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", x.baseURL))
		}
		client.BaseURL = u
	}
	return client, nil
}

// FindOrganizationInstallation looks up the installation of this App on org.
// It is used when no installation ID is configured.
func (x *Client) FindOrganizationInstallation(ctx context.Context, org string) (types.GitHubAppInstallID, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return 0, err
	}

	installation, resp, err := client.Apps.FindOrganizationInstallation(ctx, org)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return 0, goerr.Wrap(types.ErrNotFound, "GitHub App is not installed on organization",
				goerr.V("org", org),
			)
		}
		return 0, goerr.Wrap(err, "failed to find organization installation",
			goerr.V("org", org),
		)
	}

	logging.From(ctx).Info("Found organization installation",
		slog.String("org", org),
		slog.Int64("installID", installation.GetID()),
	)
	return types.GitHubAppInstallID(installation.GetID()), nil
}
