// Package orderstatus is the order side of the table/order consistency rule:
// a table cannot be freed while an order placed on it is not completed.
package orderstatus

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// OrderRepoFactory provides the order repository of the caller's transaction.
type OrderRepoFactory interface {
	OrderRepository() ports.OrderRepository
}

// Checker implements ports.OrderStatusChecker over the order repository of a
// unit of work. The repository is resolved on every call, so a Checker created
// before Begin still reads inside the transaction.
type Checker struct {
	repos OrderRepoFactory
}

var _ ports.OrderStatusChecker = Checker{}

func NewChecker(repos OrderRepoFactory) Checker {
	return Checker{repos: repos}
}

func (c Checker) AllComplete(ctx context.Context, tableID kernel.UUID) (bool, error) {
	if err := tableID.Validate(); err != nil {
		return false, err
	}

	orders, err := c.repos.OrderRepository().GetAllByTableID(ctx, tableID)
	if err != nil {
		return false, err
	}

	err = order.NewOrders(orders).ValidateChangeEmpty()
	if errors.Is(err, errs.ErrPreconditionFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
