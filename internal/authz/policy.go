// Package authz decides who may remove a dweet or comment.
//
// A Principal is resolved once per request from the presented credential and
// the user's moderator flag at that moment. Decide is a pure function of the
// principal and the resource owner; it never touches storage.
package authz

import "fmt"

// Kind tags the variant held by a Principal.
type Kind int

const (
	// Anonymous is a caller without a valid credential.
	Anonymous Kind = iota
	// User is an authenticated caller without moderator rights.
	User
	// Moderator is an authenticated caller with the moderator flag set.
	Moderator
)

func (k Kind) String() string {
	switch k {
	case Anonymous:
		return "anonymous"
	case User:
		return "user"
	case Moderator:
		return "moderator"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Principal is the acting party of a request. UserID is zero for Anonymous.
type Principal struct {
	Kind   Kind
	UserID uint
}

// AnonymousPrincipal returns the principal for callers without credentials.
func AnonymousPrincipal() Principal {
	return Principal{Kind: Anonymous}
}

// ForUser builds the principal for an authenticated user.
func ForUser(userID uint, isModerator bool) Principal {
	if userID == 0 {
		return AnonymousPrincipal()
	}
	if isModerator {
		return Principal{Kind: Moderator, UserID: userID}
	}
	return Principal{Kind: User, UserID: userID}
}

// Authenticated reports whether the principal carries a user identity.
func (p Principal) Authenticated() bool {
	return p.Kind != Anonymous && p.UserID != 0
}

// Decision is the outcome of Decide.
type Decision int

const (
	// Deny rejects the request as forbidden.
	Deny Decision = iota
	// AllowOwner permits removal because the principal authored the resource.
	AllowOwner
	// AllowModerator permits removal on moderator rights.
	AllowModerator
)

// Permitted reports whether the decision allows removal.
func (d Decision) Permitted() bool {
	return d == AllowOwner || d == AllowModerator
}

func (d Decision) String() string {
	switch d {
	case AllowOwner:
		return "allow_owner"
	case AllowModerator:
		return "allow_moderator"
	default:
		return "deny"
	}
}

// Owned is implemented by every deletable resource.
type Owned interface {
	OwnerID() uint
}

// Decide evaluates the removal policy in order: anonymous callers are denied,
// authors are allowed, moderators are allowed, everyone else is denied.
func Decide(p Principal, resource Owned) Decision {
	if !p.Authenticated() {
		return Deny
	}
	if resource != nil && resource.OwnerID() == p.UserID {
		return AllowOwner
	}
	if p.Kind == Moderator {
		return AllowModerator
	}
	return Deny
}
