package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := errors.New("test error")

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle classified forge error", func(t *testing.T) {
		ctx := context.Background()
		err := goerr.Wrap(&types.ForgeError{
			Kind: types.ErrorKindUnauthorized,
			Repo: "api",
			Op:   "merge",
		}, "merge failed", goerr.V("branch", "feature/x"))

		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", nil)
	})
}
