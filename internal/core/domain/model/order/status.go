package order

import (
	"labflow/internal/pkg/errs"
)

// Status represents the billing state of an order.
//
// State transitions:
//
//	Pending ──┬──> Paid
//	          └──> Cancelled
//
// Paid and Cancelled are terminal. The active/inactive flag on the order is
// orthogonal to Status and may change in any state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. Samples can only be taken against
	// pending orders, and only pending orders may change status.
	Pending

	// Paid indicates the order has been settled. Terminal.
	Paid

	// Cancelled indicates the order was abandoned before payment. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a persisted or submitted status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Validate checks that the Status value is Pending, Paid, or Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Cancelled))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further status transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Any other starting state returns InvalidTransitionError and leaves the
// caller's state unchanged.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Paid.String())
	}

	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Any other starting state returns InvalidTransitionError.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Cancelled.String())
	}

	return Cancelled, nil
}

// TransitionTo dispatches to the proper transition for a requested target
// status. Requesting Pending while already Pending is a no-op; every request
// against a terminal state is rejected, including re-requesting the same
// terminal state.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	switch target {
	case Paid:
		return s.Pay()
	case Cancelled:
		return s.Cancel()
	default:
		if s != Pending {
			return 0, errs.NewInvalidTransitionError("order", s.String(), target.String())
		}
		return Pending, nil
	}
}
