// Package menu contains the Menu aggregate and its MenuProduct lines.
//
// Key business rules:
//   - A menu lists at least one product line; a line's quantity is never negative
//   - The menu price never exceeds the sum of productPrice × quantity of its lines
//   - The comparison is exact (decimal arithmetic) and non-strict: equal is allowed
//   - Menu lines reference their menu by identifier only
package menu
