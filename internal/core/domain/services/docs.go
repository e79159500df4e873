// Package services provides domain services for kitchenpos operations that span
// more than one aggregate.
//
// The package includes:
//   - OrderPlacer: turns a table and the chosen menus into a new Order
//
// Domain services take already loaded aggregates and never touch persistence.
package services
