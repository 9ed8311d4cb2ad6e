// Package authz decides whether the current principal may operate on a
// user-owned resource (stream, comments, friends list, profile).
package authz

import "buddystream/internal/model"

// Deny reasons. The reason is for internal logging and response mapping
// only; user-facing messages stay generic.
const (
	ReasonNotAuthenticated = "not_authenticated"
	ReasonNotOwner         = "not_owner"
)

// Decision is the outcome of an ownership check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize permits the request iff identity is present and names the same
// user that owns the target resource. It is a pure function: callers must
// not run the underlying data operation on a deny.
func Authorize(identity *model.Identity, ownerUsername string) Decision {
	if identity == nil {
		return Decision{Reason: ReasonNotAuthenticated}
	}
	if identity.Username != ownerUsername {
		return Decision{Reason: ReasonNotOwner}
	}
	return Decision{Allowed: true}
}
