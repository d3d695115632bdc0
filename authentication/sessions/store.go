// Package sessions provides server-side session storage for cookie-based
// authentication. Sessions map an opaque id to the identity that logged in.
package sessions

import (
	"context"
	"time"

	"github.com/dan-yates1/umg-project/domain"
)

// Store persists login sessions. Create returns the opaque session id handed
// to the client; Get returns domain.ErrUnauthenticated for ids that are
// unknown or expired.
type Store interface {
	Create(ctx context.Context, identity domain.Identity, ttl time.Duration) (string, error)
	Get(ctx context.Context, id string) (domain.Identity, error)
	Delete(ctx context.Context, id string) error
}
