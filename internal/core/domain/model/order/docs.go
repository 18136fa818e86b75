// Package order provides domain entities and business logic for order
// management at the counter. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A value object for a single product line with price and quantity
//   - Status: A state machine that enforces the Pending -> Fulfilled transition
//
// Key business rules:
//   - Orders must have a valid, upper-cased identifier and at least one item
//   - Item prices are non-negative; item quantities are positive
//   - The order total is always derived from the items, never stored
//   - An order can be fulfilled exactly once; Fulfilled is a final state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
