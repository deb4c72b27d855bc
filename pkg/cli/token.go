package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func tokenCommand(rt *runtime, w io.Writer) *cli.Command {
	var user string

	userFlag := &cli.StringFlag{
		Name:        "user",
		Aliases:     []string{"u"},
		Usage:       "User the token belongs to",
		Required:    true,
		Sources:     cli.EnvVars("CROSSBRANCH_USER"),
		Destination: &user,
	}

	return &cli.Command{
		Name:  "token",
		Usage: "Manage per-user GitHub tokens",
		Flags: []cli.Flag{userFlag},
		Commands: []*cli.Command{
			tokenSetCommand(rt, w, &user),
			tokenDeleteCommand(rt, w, &user),
		},
	}
}

func tokenSetCommand(rt *runtime, w io.Writer, user *string) *cli.Command {
	var token types.GitHubToken
	return &cli.Command{
		Name:  "set",
		Usage: "Store a GitHub token for the user",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "token",
				Usage:       "GitHub token",
				Required:    true,
				Sources:     cli.EnvVars("CROSSBRANCH_USER_TOKEN"),
				Destination: (*string)(&token),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if !rt.firestore.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "--firestore-project-id is required to store tokens")
			}
			repo, err := rt.firestore.NewRepository(ctx)
			if err != nil {
				return err
			}

			if err := repo.PutToken(ctx, types.UserID(*user), token); err != nil {
				return err
			}
			logging.From(ctx).Info("token stored", slog.String("user", *user), slog.Any("token", token))
			return printJSON(w, map[string]string{"user": *user, "status": "stored"})
		},
	}
}

func tokenDeleteCommand(rt *runtime, w io.Writer, user *string) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Remove the stored GitHub token of the user",
		Action: func(ctx context.Context, c *cli.Command) error {
			if !rt.firestore.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "--firestore-project-id is required to delete tokens")
			}
			repo, err := rt.firestore.NewRepository(ctx)
			if err != nil {
				return err
			}

			if err := repo.DeleteToken(ctx, types.UserID(*user)); err != nil {
				return err
			}
			return printJSON(w, map[string]string{"user": *user, "status": "deleted"})
		},
	}
}
