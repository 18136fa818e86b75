// Package kernel provides core domain primitives for the order tracking system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - OrderID: A value object for operator-supplied order identifiers with
//     case normalization, validation, and comparison capabilities
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable, making them safe to pass by value.
package kernel
