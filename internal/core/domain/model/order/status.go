package order

import (
	"errors"
	"fmt"

	"pharmadelivery/internal/pkg/errs"
)

// Lifecycle guard errors. The messages are surfaced verbatim to API callers,
// so they are phrased for the requesting rider.
var (
	ErrAlreadyAccepted  = errors.New("order has already been accepted by another rider")
	ErrAlreadyDelivered = errors.New("order has already been marked as delivered")
	ErrNotOrderOwner    = errors.New("you can only mark your own orders as delivered")
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Accepted ──> Delivered
//
// Transitions are single-direction; no state may be skipped or revisited.
// Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	// Pending orders sit in the shared pool waiting for a rider to claim them.
	Pending

	// Accepted indicates exactly one rider has claimed the order.
	Accepted

	// Delivered indicates the assigned rider completed the order.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Delivered: "delivered",
	}
}

// StatusFromString parses a persisted status value.
// Returns an error for anything outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of Pending, Accepted, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status as persisted and as
// rendered in API responses. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Any other starting state returns ErrAlreadyAccepted: a non-pending order
// has already been claimed (or completed) by another rider.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, ErrAlreadyAccepted
	}
	return Accepted, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Accepted -> Delivered
//
// Delivering an already delivered order returns ErrAlreadyDelivered.
// Any other state is a broken invariant (a rider can only be delivering
// an order that was accepted) and is reported as an invalid value.
func (s Status) Deliver() (Status, error) {
	if s == Delivered {
		return 0, ErrAlreadyDelivered
	}
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
	return Delivered, nil
}

// ValidateCanHaveRider validates consistency between status and rider
// assignment: pending orders must have no rider, accepted and delivered
// orders must have one.
func (s Status) ValidateCanHaveRider(hasRider bool) error {
	if hasRider && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()))
	}

	if !hasRider && (s == Accepted || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()))
	}

	return nil
}
