package request

import "github.com/smartserve-app/smartserve-api/internal/httperr"

// ===============================
// Request Status
// ===============================

// A request carries a client-facing and a provider-facing status. The two
// halves always move together; StatusPair is the unit the transition table
// works on.

const (
	UserPending   = "pending"
	UserPursuing  = "pursuing"
	UserCompleted = "completed"
	UserDeclined  = "declined"
)

const (
	ServiceNone      = ""
	ServiceAccepted  = "accepted"
	ServiceRejected  = "rejected"
	ServiceCompleted = "completed"
)

type StatusPair struct {
	User    string
	Service string
}

var (
	StatusPending   = StatusPair{UserPending, ServiceNone}
	StatusPursuing  = StatusPair{UserPursuing, ServiceAccepted}
	StatusCompleted = StatusPair{UserCompleted, ServiceCompleted}
	StatusDeclined  = StatusPair{UserDeclined, ServiceRejected}
)

// ===============================
// Actions & Roles
// ===============================

type Action string

const (
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
	ActionComplete Action = "complete"
	ActionRebook   Action = "rebook"
	ActionCancel   Action = "cancel"
)

type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
)

// ===============================
// Transition table
// ===============================

type transitionKey struct {
	from   StatusPair
	action Action
	role   Role
}

var transitions = map[transitionKey]StatusPair{
	{StatusPending, ActionAccept, RoleProvider}:    StatusPursuing,
	{StatusPending, ActionDecline, RoleProvider}:   StatusDeclined,
	{StatusPursuing, ActionComplete, RoleProvider}: StatusCompleted,
	{StatusCompleted, ActionRebook, RoleClient}:    StatusPending,
	// Cancel has no target pair: it deletes the record. It is listed here so
	// the same guard covers it.
	{StatusPending, ActionCancel, RoleClient}: {},
}

// Transition validates (current state, action, actor role) against the table
// and returns the resulting status pair. Any combination not in the table is
// an invalid_state business error.
func Transition(from StatusPair, action Action, role Role) (StatusPair, error) {
	to, ok := transitions[transitionKey{from, action, role}]
	if !ok {
		return StatusPair{}, httperr.ErrBusiness("invalid_state")
	}
	return to, nil
}

func InitialStatus() StatusPair {
	return StatusPending
}
