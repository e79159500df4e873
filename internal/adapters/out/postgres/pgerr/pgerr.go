// Package pgerr maps PostgreSQL and GORM failures to the error kinds of
// kitchenpos/internal/pkg/errs so repositories report them like domain errors.
package pgerr

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	numericValueOutOfRange = "22003"
	foreignKeyViolation    = "23503"
	uniqueViolation        = "23505"
)

// Translate converts err from an operation on the row identified by id.
//
//   - gorm.ErrRecordNotFound becomes an errs.ErrObjectNotFound error
//   - a unique violation means the identifier is taken: errs.ErrPreconditionFailed
//   - a foreign key violation means a referenced row is missing: errs.ErrObjectNotFound
//   - a numeric overflow means a value does not fit its column: errs.ErrValueIsInvalid
//
// Any other error is returned unchanged.
func Translate(err error, paramName string, id kernel.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id.String())
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return errs.NewPreconditionFailedErrorWithCause(fmt.Sprintf("%s %s already exists", paramName, id), err)
	case foreignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(pgErr.ConstraintName, id.String(), err)
	case numericValueOutOfRange:
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	default:
		return err
	}
}
