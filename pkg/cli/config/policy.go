package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/crossbranch/pkg/domain/model"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/usecase"
	"github.com/m-mizutani/crossbranch/pkg/utils/dedup"
	"github.com/m-mizutani/crossbranch/pkg/utils/retry"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Policy points at a YAML file that tunes the branch workflow. Values of the
// form ${VAR} are expanded from the environment before parsing.
type Policy struct {
	path string
}

// PolicyFile is the schema of the policy file. Zero values keep defaults.
type PolicyFile struct {
	RequiredChecks []string          `yaml:"required_checks"`
	Concurrency    int               `yaml:"concurrency"`
	MergeMethod    types.MergeMethod `yaml:"merge_method"`
	Retry          struct {
		MaxAttempts int           `yaml:"max_attempts"`
		Backoff     time.Duration `yaml:"backoff"`
	} `yaml:"retry"`
	DedupTTL   time.Duration     `yaml:"dedup_ttl"`
	BuildBadge *model.BuildBadge `yaml:"build_badge"`
}

func (x *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to the policy YAML file",
			Category:    "Policy",
			Aliases:     []string{"p"},
			Destination: &x.path,
			Sources:     cli.EnvVars("CROSSBRANCH_POLICY"),
		},
	}
}

func (x Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
	)
}

// Load reads the policy file. Without a path, an empty policy is returned.
func (x *Policy) Load() (*PolicyFile, error) {
	if x.path == "" {
		return &PolicyFile{}, nil
	}

	raw, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", x.path))
	}

	return ParsePolicy(raw)
}

func ParsePolicy(raw []byte) (*PolicyFile, error) {
	expanded := os.ExpandEnv(string(raw))

	var policy PolicyFile
	decoder := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&policy); err != nil && !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse policy file", goerr.V("cause", err.Error()))
	}

	if policy.MergeMethod != "" {
		if err := policy.MergeMethod.Validate(); err != nil {
			return nil, err
		}
	}
	if policy.Concurrency < 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "concurrency must not be negative", goerr.V("concurrency", policy.Concurrency))
	}

	return &policy, nil
}

// UseCaseOptions translates the policy into use case options.
func (x *PolicyFile) UseCaseOptions() []usecase.Option {
	var options []usecase.Option

	if len(x.RequiredChecks) > 0 {
		options = append(options, usecase.WithRequiredChecks(x.RequiredChecks))
	}
	if x.Concurrency > 0 {
		options = append(options, usecase.WithConcurrency(x.Concurrency))
	}
	if x.MergeMethod != "" {
		options = append(options, usecase.WithMergeMethod(x.MergeMethod))
	}
	if x.Retry.MaxAttempts > 0 || x.Retry.Backoff > 0 {
		opts := retry.DefaultOptions()
		if x.Retry.MaxAttempts > 0 {
			opts.MaxAttempts = x.Retry.MaxAttempts
		}
		if x.Retry.Backoff > 0 {
			opts.Backoff = x.Retry.Backoff
		}
		options = append(options, usecase.WithRetryOptions(opts))
	}
	if x.DedupTTL > 0 {
		options = append(options, usecase.WithDedupCaches(
			dedup.New(dedup.WithTTL(x.DedupTTL)),
			dedup.New(dedup.WithTTL(x.DedupTTL)),
		))
	}
	if x.BuildBadge != nil && x.BuildBadge.ImageURL != "" {
		options = append(options, usecase.WithBuildBadge(x.BuildBadge))
	}

	return options
}
