package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/repository/firestore"
	"github.com/m-mizutani/crossbranch/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID of the credential store (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("CROSSBRANCH_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("CROSSBRANCH_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

// NewRepository returns the Firestore credential store, or an in-memory one
// when no project is configured.
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.CredentialRepository, error) {
	if !x.Enabled() {
		return memory.New(), nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID)
}
