package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
)

// Close closes the resource and logs the error, if any, with the logger of ctx
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && err != io.EOF {
		logging.From(ctx).Warn("Fail to close resource", slog.Any("error", err))
	}
}

// DrainAndClose discards the unread part of a response body before closing it
// so that the underlying connection can be reused
func DrainAndClose(ctx context.Context, rc io.ReadCloser) {
	if rc == nil {
		return
	}
	if _, err := io.Copy(io.Discard, rc); err != nil {
		logging.From(ctx).Debug("Fail to drain body", slog.Any("error", err))
	}
	Close(ctx, rc)
}
