// Package kernel contains shared value objects used across all domain aggregates:
// UUID identity, Price amounts in minor currency units, and the caller Role with
// its authorization guard.
//
// All value objects are immutable and validate themselves on construction. Zero
// values are invalid and fail Validate; always use the provided constructors.
package kernel
