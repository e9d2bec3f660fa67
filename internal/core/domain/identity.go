package domain

import "errors"

// ErrUnauthenticated covers every way a caller can fail to prove identity:
// missing or malformed bearer header, bad signature, expired token, or a
// token whose user no longer exists or is inactive. The finer distinctions
// are deliberately not surfaced to callers.
var ErrUnauthenticated = errors.New("unauthenticated")

// CallerIdentity is the resolved identity of an authenticated caller.
// Role is always the credential store's current value, never a stale
// token claim.
type CallerIdentity struct {
	ID   string
	Role string
}

// IsAdmin reports whether the caller holds the admin role.
func (c CallerIdentity) IsAdmin() bool {
	return c.Role == RoleAdmin
}
