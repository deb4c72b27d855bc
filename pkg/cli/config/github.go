package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/infra/forge"
	"github.com/m-mizutani/crossbranch/pkg/infra/ghapp"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds the organization and the default credential. Either a token or
// a GitHub App is required. Without an installation ID, the App installation
// on the organization is looked up at startup.
type GitHub struct {
	org           string
	token         types.GitHubToken         `masq:"secret"`
	appID         types.GitHubAppID
	installID     types.GitHubAppInstallID
	privateKey    types.GitHubAppPrivateKey `masq:"secret"`
	webhookSecret types.WebhookSecret       `masq:"secret"`
	triggerSecret types.WebhookSecret       `masq:"secret"`
	apiBaseURL    string
	webBaseURL    string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-org",
			Usage:       "GitHub organization owning the managed repositories",
			Category:    "GitHub",
			Destination: &x.org,
			Sources:     cli.EnvVars("CROSSBRANCH_GITHUB_ORG"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "Default GitHub token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("CROSSBRANCH_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("CROSSBRANCH_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID (looked up from the organization if omitted)",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("CROSSBRANCH_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("CROSSBRANCH_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "Secret to verify GitHub webhook deliveries",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("CROSSBRANCH_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "pr-trigger-secret",
			Usage:       "Secret to verify signed pull request triggers",
			Category:    "GitHub",
			Destination: (*string)(&x.triggerSecret),
			Sources:     cli.EnvVars("CROSSBRANCH_PR_TRIGGER_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.apiBaseURL,
			Sources:     cli.EnvVars("CROSSBRANCH_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-web-url",
			Usage:       "GitHub web base URL used in generated links",
			Category:    "GitHub",
			Value:       forge.DefaultWebBaseURL,
			Destination: &x.webBaseURL,
			Sources:     cli.EnvVars("CROSSBRANCH_GITHUB_WEB_URL"),
		},
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("org", x.org),
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.Int("webhookSecret.len", len(x.webhookSecret)),
		slog.Int("triggerSecret.len", len(x.triggerSecret)),
		slog.String("apiBaseURL", x.apiBaseURL),
		slog.String("webBaseURL", x.webBaseURL),
	)
}

func (x GitHub) WebhookSecret() types.WebhookSecret {
	return x.webhookSecret
}

func (x GitHub) TriggerSecret() types.WebhookSecret {
	return x.triggerSecret
}

// NewProvider builds the forge provider. creds may be nil, then every call
// runs with the default credential.
func (x *GitHub) NewProvider(ctx context.Context, creds interfaces.CredentialRepository) (*forge.Provider, error) {
	if x.org == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--github-org is required")
	}

	options := []forge.ProviderOption{
		forge.WithWebBaseURL(x.webBaseURL),
	}
	if x.apiBaseURL != "" {
		options = append(options, forge.WithAPIBaseURL(x.apiBaseURL))
	}
	if creds != nil {
		options = append(options, forge.WithCredentials(creds))
	}

	switch {
	case x.token != "":
		options = append(options, forge.WithDefaultToken(x.token))

	case x.appID != 0:
		var appOptions []ghapp.Option
		if x.apiBaseURL != "" {
			appOptions = append(appOptions, ghapp.WithBaseURL(x.apiBaseURL))
		}
		app, err := ghapp.New(x.appID, x.privateKey, appOptions...)
		if err != nil {
			return nil, err
		}

		installID := x.installID
		if installID == 0 {
			found, err := app.FindOrganizationInstallation(ctx, x.org)
			if err != nil {
				return nil, err
			}
			installID = found
		}
		options = append(options, forge.WithGitHubApp(app, installID))

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "either --github-token or --github-app-id is required")
	}

	return forge.NewProvider(x.org, options...)
}
