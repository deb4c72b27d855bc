package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	out io.Writer
}

type Option func(*CLI)

// WithOutput sets where command results are printed. Default is stdout.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		out: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(ctx context.Context, argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		rt runtime
	)

	logFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [trace|debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("CROSSBRANCH_LOG_LEVEL"),
			Destination: &logLevel,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("CROSSBRANCH_LOG_FORMAT"),
			Destination: &logFormat,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("CROSSBRANCH_LOG_OUTPUT"),
			Destination: &logOutput,
			Value:       "stderr",
		},
	}

	app := &cli.Command{
		Name:   "crossbranch",
		Usage:  "Drive one feature branch across many repositories",
		Writer: x.out,
		Flags:  slice.Flatten(logFlags, rt.flags()),
		Commands: []*cli.Command{
			serveCommand(&rt),
			branchCommand(&rt, x.out),
			searchCommand(&rt, x.out),
			reposCommand(&rt, x.out),
			tokenCommand(&rt, x.out),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
