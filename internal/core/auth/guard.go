package auth

import "github.com/theotechtrad/taskboard/internal/core/domain"

// The guard is a set of pure decision functions: no I/O, no mutation,
// defined for every input. Every resource operation consults it after the
// resource is loaded and before anything is returned or changed.

// CanAccess reports whether caller may read, modify, or delete a resource
// owned by ownerID: allowed for admins and for the owner, denied otherwise.
func CanAccess(caller domain.CallerIdentity, ownerID string) bool {
	return caller.IsAdmin() || caller.ID == ownerID
}

// RequireAdmin reports whether caller holds the admin role.
func RequireAdmin(caller domain.CallerIdentity) bool {
	return caller.IsAdmin()
}

// OwnedBy returns the owner filter a listing operation must apply for this
// caller: empty (no filter, see everything) for admins, the caller's own id
// otherwise. Repositories treat an empty owner filter as "all owners".
func OwnedBy(caller domain.CallerIdentity) string {
	if caller.IsAdmin() {
		return ""
	}
	return caller.ID
}
