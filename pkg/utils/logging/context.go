package logging

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns the request ID of ctx. A new ID is generated and
// stored in the returned context when ctx has none.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxDeliveryIDKey struct{}

// WithDeliveryID records the webhook delivery being processed.
func WithDeliveryID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxDeliveryIDKey{}, id)
}

// DeliveryID returns the webhook delivery ID of ctx, or "" outside a delivery.
func DeliveryID(ctx context.Context) string {
	id, _ := ctx.Value(ctxDeliveryIDKey{}).(string)
	return id
}

// InheritContextValues copies the request ID and delivery ID from src to dst.
// The logger is not copied; use With for that.
func InheritContextValues(dst, src context.Context) context.Context {
	if reqID, ok := src.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, reqID)
	}
	if id := DeliveryID(src); id != "" {
		dst = WithDeliveryID(dst, id)
	}
	return dst
}
