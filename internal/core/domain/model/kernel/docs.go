// Package kernel holds the value objects shared by every kitchenpos aggregate.
//
// The package includes:
//   - UUID: identifiers for aggregates and their entities
//   - Price: a non-negative decimal amount with exact arithmetic
//   - DomainEvent: the contract for facts recorded by aggregates
//
// Values are immutable and fail Validate when used as zero values.
package kernel
