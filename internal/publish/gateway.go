// Package publish owns the one boundary allowed to mutate remote listing
// state. Validation never reaches it; by the time a draft arrives here every
// workflow guard has already passed.
package publish

import (
	"context"

	"github.com/dxbsouq/souq-backend/internal/draft"
)

// Gateway persists a completed draft and flips it to published, returning
// the durable listing identifier. Implementations must fail with
// apperror.ErrUnauthenticated when no user identity is supplied,
// apperror.ErrNotConfigured when the backend connection was never
// established, apperror.ErrNotFound when no draft row exists for
// (draft id, user id), and apperror.RemoteError for backend-side rejections,
// propagated verbatim. Calls are not retried automatically.
type Gateway interface {
	Publish(ctx context.Context, userID int, d *draft.Draft) (string, error)
}
