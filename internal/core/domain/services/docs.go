// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DispatchBoard: ranks ready-for-pickup orders for a courier by total travel distance
//   - Restaurant sorting strategies presented to customers while browsing
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
