// Package order provides domain entities and business logic for placed orders.
// It implements the Order aggregate root with its frozen cart snapshot and the
// status lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the immutable placement snapshot and
//     the mutable status
//   - OrderItem / Ingredient: frozen copies of the cart content at placement
//   - Status: a rank-ordered state machine enforcing forward-only transitions
//     with cancellation reachable from any state
//
// Key business rules:
//   - An order is created exactly once, from a non-empty cart, in Pending status
//   - totalItem and totalPrice are snapshots, never recomputed from the items
//   - Restaurant-side transitions may only move forward or stay level along
//     the rank ladder; customer-side cancellation is unconditional
package order
