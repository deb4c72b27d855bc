package cli

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"
)

func reposCommand(rt *runtime, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "repos",
		Usage: "List repositories of the catalog",
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := rt.catalog.New(ctx)
			if err != nil {
				return err
			}

			repos, err := cat.ListRepositories(ctx)
			if err != nil {
				return err
			}
			return printJSON(w, repos)
		},
	}
}
