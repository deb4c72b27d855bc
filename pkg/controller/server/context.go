package server

import (
	"context"

	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
)

// DetachContext returns a context that is never cancelled but keeps the
// logger, request ID and delivery ID of ctx. Webhook work outlives the
// request that triggered it.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}
