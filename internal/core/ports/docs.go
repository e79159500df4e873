// Package ports defines the contracts between the kitchenpos core and its
// infrastructure: one repository per aggregate, the unit of work that binds them
// to a transaction, the order-status check the table use cases depend on, and the
// publisher that receives domain events after commit.
package ports
