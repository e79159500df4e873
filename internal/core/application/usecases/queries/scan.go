package queries

import (
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toPrice(amount decimal.Decimal) (kernel.Price, error) {
	return kernel.NewPrice(amount)
}
