// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	TableGroupRepoFactory interface {
		TableGroupRepository() ports.TableGroupRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderStatusCheckerFactory provides the order-side check bound to the same
	// transaction as the table repositories.
	OrderStatusCheckerFactory interface {
		OrderStatusChecker() ports.OrderStatusChecker
	}

	// ProductUoW manages transactions for product registration.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// MenuGroupUoW manages transactions for menu group registration.
	MenuGroupUoW interface {
		TxManager
		MenuGroupRepoFactory
	}

	MenuGroupUoWFactory interface {
		Create() MenuGroupUoW
	}

	// MenuUoW manages transactions for menu registration, which reads the menu
	// group and the products the menu is made of.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
		MenuGroupRepoFactory
		ProductRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderUoW manages transactions for order placement and status changes.
	// Placement reads the table and the ordered menus with their groups and products.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
		MenuRepoFactory
		MenuGroupRepoFactory
		ProductRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TableUoW manages transactions for table occupancy changes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ok, err := uow.OrderStatusChecker().AllComplete(ctx, tableID)
	//   // ... change the table only when ok
	//
	//   err = uow.Commit(ctx)
	TableUoW interface {
		TxManager
		TableRepoFactory
		TableGroupRepoFactory
		OrderStatusCheckerFactory
	}

	TableUoWFactory interface {
		Create() TableUoW
	}
)
