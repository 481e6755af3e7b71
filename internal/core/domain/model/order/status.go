package order

import (
	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose forward sequence is strictly ordered by
// rank, with cancellation reachable from any state.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	    │           │             │           │              │               │
//	    └───────────┴─────────────┴───────────┴──────────────┴───────────────┴──> Cancelled
//
// Transitions requested by the restaurant may only move forward or stay level
// along the ladder; moving backward is illegal. Moving to Cancelled is always
// permitted regardless of the current rank.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order placement.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is packed and waiting for pickup.
	Ready

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer. It is the last
	// rung of the forward ladder.
	Delivered

	// Cancelled is terminal and sits outside the forward sequence: it is
	// reachable from any state and permits no further transitions.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// StatusFromRank converts an integer rank from an external caller into a
// Status. Ranks outside [Pending, Cancelled] fail with the catalog
// OrderStatusInvalid error, without any further processing.
func StatusFromRank(rank int) (Status, error) {
	if rank < int(Pending) || rank > int(Cancelled) {
		return Unknown, errs.ErrOrderStatusInvalid.WithCause(
			errs.NewValueIsOutOfRangeError("status", rank, int(Pending), int(Cancelled)))
	}
	return Status(rank), nil
}

// Rank returns the integer ordering value of the status. Ranks increase
// monotonically along the forward sequence; Cancelled's rank is not part of
// the forward ordering.
func (s Status) Rank() int {
	return int(s)
}

// Validate checks if the Status value is one of the defined statuses.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.ErrOrderStatusInvalid.WithCause(
			errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Cancelled)))
	}
	return nil
}

// String returns the symbolic name of the status, or "UNKNOWN" for invalid
// values. This method implements the fmt.Stringer interface and is safe to
// call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ChangeTo validates the transition from the current status to next and
// returns the resulting status.
//
// Rules:
//   - next must be a defined status
//   - next == Cancelled is always permitted, from any current status
//   - otherwise the transition may only move forward or stay level: it is
//     rejected when the current rank is greater than the requested rank
//
// Returns the catalog OrderStatusInvalid error on a rejected transition.
func (s Status) ChangeTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if next == Cancelled {
		return Cancelled, nil
	}

	if s.Rank() > next.Rank() {
		return Unknown, errs.ErrOrderStatusInvalid
	}

	return next, nil
}
