// Package queries contains the read side: every handler runs raw SQL against the
// tables written by the postgres repositories and returns flat read models. No
// query goes through a unit of work or loads an aggregate.
package queries
