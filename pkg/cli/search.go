package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func searchCommand(rt *runtime, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find code referencing an issue ID across the organization",
		ArgsUsage: "<issue-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			issueID := c.Args().First()
			if issueID == "" {
				return goerr.Wrap(types.ErrInvalidOption, "issue ID is required")
			}

			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}

			result, err := uc.SearchIssueReferences(ctx, issueID)
			if err != nil {
				return err
			}
			if result == nil {
				result = model.SearchResult{}
			}
			return printJSON(w, result)
		},
	}
}
