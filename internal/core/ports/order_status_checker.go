package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
)

// OrderStatusChecker answers, on behalf of the order side, whether a table may
// be freed. Table use cases consult it before emptying or ungrouping a table and
// never read orders themselves.
//
// Implementations must run inside the caller's transaction so that the answer and
// the table change commit together.
type OrderStatusChecker interface {
	// AllComplete reports whether every order placed on the table is completed.
	// A table without orders is complete.
	AllComplete(ctx context.Context, tableID kernel.UUID) (bool, error)
}
