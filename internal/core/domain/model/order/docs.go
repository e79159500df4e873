// Package order holds the Order aggregate of the kitchen: what a table ordered,
// the menu snapshot each line item was sold at, and where the order is in its
// cooking lifecycle.
//
// The package includes:
//   - Order: the aggregate root, identified by its id and placed on one table
//   - OrderLineItem: a quantity of one menu together with the OrderMenu snapshot
//   - OrderMenuProduct: a product of the ordered menu, part of that snapshot
//   - Status: the lifecycle state machine
//   - Orders: the orders of one table, used to decide whether the table may be freed
//   - PlacedEvent and StatusChangedEvent: facts recorded for publication after commit
//
// Key business rules:
//   - An order has at least one line item and every quantity is at least 1
//   - A new order starts in Cooking
//   - Completion is terminal; any status may be set while the order is not completed
//   - Line items keep the menu name, price, group name and products they were ordered with
package order
