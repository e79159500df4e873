// Package errs provides the error types shared by every layer of kitchenpos.
//
// Each type unwraps to one sentinel, and the sentinels map onto the four error
// kinds the API reports:
//   - ErrObjectNotFound: a referenced product, menu, table, group or order does not exist
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: invalid arguments
//   - ErrInvalidStateTransition: a status change the current state forbids
//   - ErrPreconditionFailed: the state of a table or its orders forbids the operation
//
// Every type follows the same pattern: a constructor with and without cause, an
// Error method that appends "(cause: ...)" when a cause is present, and an Unwrap
// method returning the sentinel.
package errs
