// Package table contains the OrderTable and TableGroup aggregates: the physical
// tables of the restaurant and the groups formed by pushing tables together.
//
// Key business rules:
//   - An empty table has no guests, and guests are seated only at occupied tables
//   - Grouped tables are changed through their group, never one by one
//   - A group holds at least two tables, all of them empty and ungrouped beforehand
//   - Grouping occupies every member; ungrouping is all-or-nothing
//
// Whether a table has uncompleted orders is not known here. Callers ask the order
// side before emptying or ungrouping a table.
package table
