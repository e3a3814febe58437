package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The state machine is deliberately permissive: any non-terminal status may
// move to any other status, including skipping stages, so a kitchen can mark
// a pickup order DELIVERED straight from PREPARING. The one hard rule is
// that Delivered is terminal; once reached, neither the status nor the
// order's line items may change.
//
//	New ──> Preparing ──> Delivering ──> Delivered
//	 └────────┴──────────────┘ (any forward/backward move between
//	                            non-terminal states is allowed)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned to every created order.
	New

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Delivering indicates the order has left the shop.
	Delivering

	// Delivered is the terminal status. A delivered order is immutable.
	Delivered
)

// getStatusStrings returns the wire/storage representation of each status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		Preparing:  "PREPARING",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
	}
}

// getValidStatusStrings returns only the statuses accepted from external input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "NEW",
		Preparing:  "PREPARING",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
	}
}

// StatusFromString parses the storage/wire representation of a status.
// Returns an error for anything outside the four known statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the four known statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the storage/wire name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ChangeTo transitions the status to next.
//
// Any non-terminal status can move to any valid status; only Delivered
// refuses further changes.
//
// Returns:
//   - (next, nil) on a permitted transition
//   - (0, error) if the current status is terminal or next is invalid
func (s Status) ChangeTo(next Status) (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is a terminal status and cannot change", s.String()),
		)
	}

	if err := next.Validate(); err != nil {
		return 0, err
	}

	return next, nil
}
