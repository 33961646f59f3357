package service

import "github.com/google/uuid"

// SessionStore defines the process-wide session registry mapping opaque
// bearer tokens to user identities. It is read on every authenticated
// request and written only on login/logout, so implementations must be safe
// for concurrent use without blocking readers on business work.
//
// Invariant: at most one live token per user. Issuing a token invalidates
// the user's previous one, and no two tokens ever resolve to the same user.
type SessionStore interface {
	// Issue binds a fresh token to the user, revoking any previous token.
	Issue(userID uuid.UUID) string

	// Resolve returns the user bound to the token, if any.
	Resolve(token string) (uuid.UUID, bool)

	// Revoke removes a single token.
	Revoke(token string)

	// RevokeUser removes the user's live token, if any.
	RevokeUser(userID uuid.UUID)
}
