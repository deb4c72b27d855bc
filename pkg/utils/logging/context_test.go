package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestFrom(t *testing.T) {
	t.Run("logger set by With", func(t *testing.T) {
		logger := slog.Default().With("component", "test")
		ctx := logging.With(context.Background(), logger)
		gt.V(t, logging.From(ctx)).Equal(logger)
	})

	t.Run("default logger without one", func(t *testing.T) {
		retrieved := logging.From(context.Background())
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRequestID(t *testing.T) {
	reqID, ctx := logging.CtxRequestID(context.Background())
	gt.V(t, reqID).NotEqual(types.RequestID(""))

	again, ctx2 := logging.CtxRequestID(ctx)
	gt.V(t, again).Equal(reqID)
	gt.V(t, ctx2).Equal(ctx)
}

func TestDeliveryID(t *testing.T) {
	ctx := context.Background()
	gt.V(t, logging.DeliveryID(ctx)).Equal("")

	ctx = logging.WithDeliveryID(ctx, "72d3162e-cc78-11e3-81ab-4c9367dc0958")
	gt.V(t, logging.DeliveryID(ctx)).Equal("72d3162e-cc78-11e3-81ab-4c9367dc0958")

	// empty ID keeps the previous one
	ctx = logging.WithDeliveryID(ctx, "")
	gt.V(t, logging.DeliveryID(ctx)).Equal("72d3162e-cc78-11e3-81ab-4c9367dc0958")
}

func TestInheritContextValues(t *testing.T) {
	reqID, src := logging.CtxRequestID(context.Background())
	src = logging.WithDeliveryID(src, "d-1")
	src = logging.With(src, slog.Default().With("k", "v"))

	dst := logging.InheritContextValues(context.Background(), src)
	got, _ := logging.CtxRequestID(dst)
	gt.V(t, got).Equal(reqID)
	gt.V(t, logging.DeliveryID(dst)).Equal("d-1")

	// the logger is not part of the inherited values
	gt.V(t, logging.From(dst).Handler()).Equal(logging.Default().Handler())
}
