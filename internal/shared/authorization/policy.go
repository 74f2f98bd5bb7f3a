// Package authorization holds the roles and the single access-policy
// component. Every per-record visibility or mutation rule in the system is
// decided here; handlers and use cases never branch on roles themselves.
package authorization

// Actor identifies the authenticated caller for policy decisions.
type Actor struct {
	UserID uint
	Role   UserRole
}

// Decision is the outcome of a policy check: Allow, or Deny with a reason.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// TicketUpdateScope describes which ticket fields an actor may change.
type TicketUpdateScope int

const (
	// TicketUpdateNone forbids any change.
	TicketUpdateNone TicketUpdateScope = iota
	// TicketUpdateDescription allows changing only the description
	// (a requester amending their own ticket).
	TicketUpdateDescription
	// TicketUpdateFull allows changing every mutable field
	// (status, priority, assignee, title, description, category).
	TicketUpdateFull
)

// CanViewTicket decides read access to a ticket owned by requesterID.
// An existing-but-invisible ticket is a deny, which callers surface as
// forbidden rather than not found.
func CanViewTicket(actor Actor, requesterID uint) Decision {
	if actor.Role.IsStaff() {
		return Allow()
	}
	if actor.UserID == requesterID {
		return Allow()
	}
	return Deny("you don't have permission to view this ticket")
}

// TicketUpdateScopeFor decides how much of a ticket the actor may change.
func TicketUpdateScopeFor(actor Actor, requesterID uint) TicketUpdateScope {
	if actor.Role.IsStaff() {
		return TicketUpdateFull
	}
	if actor.UserID == requesterID {
		return TicketUpdateDescription
	}
	return TicketUpdateNone
}

// CanCommentOnTicket decides whether the actor may read or append comments
// on a ticket owned by requesterID. Comment visibility follows ticket
// visibility.
func CanCommentOnTicket(actor Actor, requesterID uint) Decision {
	if actor.Role.IsStaff() {
		return Allow()
	}
	if actor.UserID == requesterID {
		return Allow()
	}
	return Deny("you don't have permission to access this ticket's comments")
}

// CanViewLog decides read access to a log uploaded by ownerID.
func CanViewLog(actor Actor, ownerID uint) Decision {
	if actor.Role.IsStaff() {
		return Allow()
	}
	if actor.UserID == ownerID {
		return Allow()
	}
	return Deny("you don't have permission to view this log")
}

// ScopesLogListToOwner reports whether log listings must be restricted to
// the actor's own uploads.
func ScopesLogListToOwner(actor Actor) bool {
	return !actor.Role.IsStaff()
}

// ScopesTicketListToOwner reports whether ticket listings must be restricted
// to tickets the actor requested.
func ScopesTicketListToOwner(actor Actor) bool {
	return !actor.Role.IsStaff()
}

// CanReportMetric decides write access to system metrics.
func CanReportMetric(actor Actor) Decision {
	if actor.Role.IsStaff() {
		return Allow()
	}
	return Deny("only agents and admins can report system metrics")
}

// CanListUsers decides access to the full user listing.
func CanListUsers(actor Actor) Decision {
	if actor.Role.IsAdmin() {
		return Allow()
	}
	return Deny("admin access required")
}
