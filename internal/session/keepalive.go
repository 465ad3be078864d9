package session

import (
	"context"
	"time"

	"odyssweb/internal/utils"
)

// TokenRefresher renews the stored access token when it is close to
// expiry. Satisfied by the API client.
type TokenRefresher interface {
	RefreshIfExpiring(ctx context.Context) error
}

// KeepAlive periodically refreshes the session's access token so a user
// who leaves the app idle does not come back to an expired session.
type KeepAlive struct {
	Store     *Store
	Refresher TokenRefresher
	Timeout   time.Duration
	RequestID string
}

// Sweep runs one keepalive pass. Signed-out sessions are skipped; refresh
// failures are logged and left to the store's Clear to surface on the
// next request.
func (k KeepAlive) Sweep(ctx context.Context) {
	access, refresh := k.Store.Tokens()
	if access == "" || refresh == "" {
		return
	}

	timeout := k.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := k.Refresher.RefreshIfExpiring(ctx); err != nil {
		utils.LogEvent(k.RequestID, "keepalive", "sweep_failed", err.Error())
		return
	}
	utils.LogEvent(k.RequestID, "keepalive", "sweep", "token checked")
}
