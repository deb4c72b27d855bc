package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func branchCommand(rt *runtime, w io.Writer) *cli.Command {
	var user string

	// query resolves the target branch from the first argument, falling back
	// to the branch checked out in the working directory.
	query := func(ctx context.Context, c *cli.Command) (model.BranchQuery, error) {
		branch := types.BranchName(c.Args().First())
		if branch == "" {
			current, err := CurrentBranch(".")
			if err != nil {
				return model.BranchQuery{}, err
			}
			branch = current
			logging.From(ctx).Debug("using current branch", slog.Any("branch", branch))
		}
		return model.BranchQuery{Branch: branch, User: types.UserID(user)}, nil
	}

	return &cli.Command{
		Name:    "branch",
		Aliases: []string{"b"},
		Usage:   "Operate on one branch across all repositories",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "user",
				Aliases:     []string{"u"},
				Usage:       "Act with the stored credential of this user",
				Sources:     cli.EnvVars("CROSSBRANCH_USER"),
				Destination: &user,
			},
		},
		Commands: []*cli.Command{
			branchStatusCommand(rt, w, query),
			branchCreateCommand(rt, w, query),
			branchMergeCommand(rt, w, query),
			branchSimpleCommand(rt, w, query, "close", "Close open pull requests of the branch",
				func(ctx context.Context, uc branchUseCase, q model.BranchQuery) (model.BatchResult, error) {
					return uc.ClosePullRequests(ctx, q)
				}),
			branchSimpleCommand(rt, w, query, "describe", "Refresh the cross-repository link block of every pull request",
				func(ctx context.Context, uc branchUseCase, q model.BranchQuery) (model.BatchResult, error) {
					return uc.RefreshDescriptions(ctx, q)
				}),
			branchAnnounceCommand(rt, w, query),
			branchDeleteCommand(rt, w, query),
		},
	}
}

type queryFunc func(ctx context.Context, c *cli.Command) (model.BranchQuery, error)

type branchUseCase interface {
	ClosePullRequests(ctx context.Context, query model.BranchQuery) (model.BatchResult, error)
	RefreshDescriptions(ctx context.Context, query model.BranchQuery) (model.BatchResult, error)
}

func branchStatusCommand(rt *runtime, w io.Writer, query queryFunc) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show branch, checks, pull request and reviews per repository",
		ArgsUsage: "[branch]",
		Action: func(ctx context.Context, c *cli.Command) error {
			q, err := query(ctx, c)
			if err != nil {
				return err
			}
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}

			view, err := uc.Aggregate(ctx, q)
			if err != nil {
				return err
			}
			return printJSON(w, viewOutput(view))
		},
	}
}

func branchCreateCommand(rt *runtime, w io.Writer, query queryFunc) *cli.Command {
	var (
		base  string
		title string
		draft bool
	)
	return &cli.Command{
		Name:      "create",
		Usage:     "Open a pull request in every repository carrying the branch",
		ArgsUsage: "[branch]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "base",
				Usage:       "Target branch (default branch of each repository if empty)",
				Destination: &base,
			},
			&cli.StringFlag{
				Name:        "title",
				Usage:       "Pull request title (issue title or branch name if empty)",
				Destination: &title,
			},
			&cli.BoolFlag{
				Name:        "draft",
				Usage:       "Open pull requests as draft",
				Destination: &draft,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			q, err := query(ctx, c)
			if err != nil {
				return err
			}
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}

			result, err := uc.CreatePullRequests(ctx, &model.CreatePRsInput{
				BranchQuery: q,
				Base:        base,
				Title:       title,
				Draft:       draft,
			})
			if err != nil && result == nil {
				return err
			}
			if printErr := printBatch(w, result); printErr != nil {
				return printErr
			}
			return err
		},
	}
}

func branchMergeCommand(rt *runtime, w io.Writer, query queryFunc) *cli.Command {
	var (
		method string
		force  bool
	)
	return &cli.Command{
		Name:      "merge",
		Usage:     "Merge open pull requests of the branch",
		ArgsUsage: "[branch]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "method",
				Usage:       "Merge method [merge|squash|rebase] (policy default if empty)",
				Destination: &method,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Merge even when some repositories are not mergeable",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			q, err := query(ctx, c)
			if err != nil {
				return err
			}
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}

			result, err := uc.MergePullRequests(ctx, &model.MergePRsInput{
				BranchQuery: q,
				Method:      types.MergeMethod(method),
				Force:       force,
			})
			if err != nil {
				return err
			}
			return printBatch(w, result)
		},
	}
}

func branchSimpleCommand(rt *runtime, w io.Writer, query queryFunc, name, usage string, run func(ctx context.Context, uc branchUseCase, q model.BranchQuery) (model.BatchResult, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[branch]",
		Action: func(ctx context.Context, c *cli.Command) error {
			q, err := query(ctx, c)
			if err != nil {
				return err
			}
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}

			result, err := run(ctx, uc, q)
			if err != nil {
				return err
			}
			return printBatch(w, result)
		},
	}
}

func branchAnnounceCommand(rt *runtime, w io.Writer, query queryFunc) *cli.Command {
	var message string
	return &cli.Command{
		Name:      "announce",
		Usage:     "Comment a message on every open pull request of the branch",
		ArgsUsage: "[branch]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "Comment body",
				Required:    true,
				Destination: &message,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			q, err := query(ctx, c)
			if err != nil {
				return err
			}
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}

			result, err := uc.AnnouncePullRequests(ctx, q, message)
			if err != nil {
				return err
			}
			return printBatch(w, result)
		},
	}
}

type deleteOutput struct {
	Deleted []types.RepoName          `json:"deleted"`
	Failed  map[types.RepoName]string `json:"failed,omitempty"`
}

func branchDeleteCommand(rt *runtime, w io.Writer, query queryFunc) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete the branch from every repository carrying it",
		ArgsUsage: "[branch]",
		Action: func(ctx context.Context, c *cli.Command) error {
			q, err := query(ctx, c)
			if err != nil {
				return err
			}
			uc, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}

			deleted, err := uc.DeleteBranches(ctx, q)
			out := deleteOutput{Deleted: deleted}

			var partial *types.PartialFailureError
			if errors.As(err, &partial) {
				out.Deleted = partial.Succeeded
				out.Failed = make(map[types.RepoName]string, len(partial.Failed))
				for repo, e := range partial.Failed {
					out.Failed[repo] = e.Error()
				}
			} else if err != nil {
				return err
			}

			if printErr := printJSON(w, out); printErr != nil {
				return printErr
			}
			return err
		},
	}
}
