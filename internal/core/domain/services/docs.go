// Package services contains domain services for the order tracking system.
// Domain services implement business logic that spans multiple aggregates or,
// as with OrderTracker, owns process-lifetime collections of aggregates that
// no single aggregate can manage on its own.
package services
