package token

import (
	"context"
	"time"
)

// Store maps opaque bearer tokens to user ids with a TTL. Verification is a
// plain lookup so revocation and expiry take effect immediately.
type Store interface {
	// Issue creates a new token for the user and persists it with the
	// configured TTL.
	Issue(ctx context.Context, userID int64, username string) (string, error)
	// Verify resolves a token to its owning user id. The optional "Bearer "
	// prefix is stripped. Any failure (unknown, expired, malformed, backend
	// error) yields ok=false; Verify never returns an error to the caller.
	Verify(ctx context.Context, raw string) (userID int64, ok bool)
	// Revoke invalidates a previously issued token.
	Revoke(ctx context.Context, raw string) error
}

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour
