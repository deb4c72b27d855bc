package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/crossbranch/pkg/cli/config"
	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/infra"
	"github.com/m-mizutani/crossbranch/pkg/usecase"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// runtime collects the configuration shared by every command. Its flags are
// registered on the root command and inherited by subcommands.
type runtime struct {
	github    config.GitHub
	catalog   config.Catalog
	policy    config.Policy
	firestore config.Firestore
}

func (x *runtime) flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.catalog.Flags(),
		x.policy.Flags(),
		x.firestore.Flags(),
	)
}

func (x *runtime) newUseCase(ctx context.Context) (*usecase.UseCase, error) {
	logging.From(ctx).Debug("building use case",
		slog.Any("GitHub", x.github),
		slog.Any("Catalog", x.catalog),
		slog.Any("Policy", x.policy),
		slog.Any("Firestore", x.firestore),
	)

	policy, err := x.policy.Load()
	if err != nil {
		return nil, err
	}

	creds, err := x.firestore.NewRepository(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := x.github.NewProvider(ctx, creds)
	if err != nil {
		return nil, err
	}

	cat, err := x.catalog.New(ctx)
	if err != nil {
		return nil, err
	}

	clients := infra.New(
		infra.WithCatalog(cat),
		infra.WithForges(provider),
		infra.WithCredentials(creds),
	)
	return usecase.New(clients, policy.UseCaseOptions()...), nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}

type recordOutput struct {
	*model.RepoBranchRecord
	Error string `json:"error,omitempty"`
}

func viewOutput(view model.AggregatedBranchView) map[types.RepoName]recordOutput {
	out := make(map[types.RepoName]recordOutput, len(view))
	for repo, rec := range view {
		o := recordOutput{RepoBranchRecord: rec}
		if rec.Err != nil {
			o.Error = rec.Err.Error()
		}
		out[repo] = o
	}
	return out
}

type outcomeOutput struct {
	model.BatchOutcome
	Error string `json:"error,omitempty"`
}

func batchOutput(result model.BatchResult) map[types.RepoName]outcomeOutput {
	out := make(map[types.RepoName]outcomeOutput, len(result))
	for repo, o := range result {
		v := outcomeOutput{BatchOutcome: o}
		if o.Err != nil {
			v.Error = o.Err.Error()
		}
		out[repo] = v
	}
	return out
}

// printBatch prints the per-repository outcomes and turns any failure into a
// non-zero exit.
func printBatch(w io.Writer, result model.BatchResult) error {
	if err := printJSON(w, batchOutput(result)); err != nil {
		return err
	}
	if result.HasFailure() {
		return &types.PartialFailureError{
			Succeeded: result.Succeeded(),
			Failed:    result.Failed(),
		}
	}
	return nil
}
