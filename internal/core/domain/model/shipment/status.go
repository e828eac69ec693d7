package shipment

import (
	"fmt"
	"strings"

	"shipments/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct business workflow.
//
// State transitions:
//
//	pending ──┬──> in_transit ──┬──> delivered
//	          │                 │
//	          └──> cancelled <──┘
//
// delivered and cancelled are terminal: they have no outgoing edges.
// A transition to the current status is always a permitted no-op,
// including for terminal states.
type Status string

const (
	// StatusPending is the initial status assigned at creation when no
	// explicit status is supplied.
	StatusPending Status = "pending"

	// StatusInTransit indicates the shipment has left its origin.
	StatusInTransit Status = "in_transit"

	// StatusDelivered indicates the shipment reached its destination.
	// Terminal state.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the shipment was cancelled before
	// delivery. Terminal state.
	StatusCancelled Status = "cancelled"
)

// Statuses returns all valid status values in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInTransit, StatusDelivered, StatusCancelled}
}

// statusTransitions returns the directed edge set of the lifecycle graph.
// Terminal states map to an empty slice.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusInTransit, StatusCancelled},
		StatusInTransit: {StatusDelivered, StatusCancelled},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// Validate checks that the Status is one of the four valid values.
// Returns a ValidationError naming the valid set otherwise.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValidationError(
			fmt.Sprintf("Invalid status: %s", s),
			errs.FieldError{
				Field:   "status",
				Message: fmt.Sprintf("Status must be one of: %s", joinStatuses(Statuses())),
			},
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0
}

// AllowedTransitions returns the statuses reachable from s via a single
// edge. Terminal states return an empty slice. The no-op self-transition
// is not part of the edge set.
func (s Status) AllowedTransitions() []Status {
	edges := statusTransitions()[s]
	out := make([]Status, len(edges))
	copy(out, edges)
	return out
}

// CanTransitionTo reports whether a transition from s to next is legal:
// either next equals s (no-op update) or next is in the edge set of s.
// Pure, no side effects.
func (s Status) CanTransitionTo(next Status) bool {
	if next == s {
		return true
	}
	for _, allowed := range statusTransitions()[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// TransitionErrorMessage builds the diagnostic message for an illegal
// transition from current to next. Terminal states yield the final-state
// notice; other states list the allowed targets. Diagnostics only, never
// used for control flow.
func TransitionErrorMessage(current, next Status) string {
	allowed := current.AllowedTransitions()
	if len(allowed) == 0 {
		return fmt.Sprintf("Cannot change status from '%s'. This is a final state.", current)
	}
	return fmt.Sprintf(
		"Invalid status transition from '%s' to '%s'. Allowed transitions: %s",
		current, next, joinStatuses(allowed),
	)
}

func joinStatuses(statuses []Status) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
