package kernel

import (
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when a zero-value Price is used.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice, PriceFromString or ZeroPrice")

// PriceScale is the number of fractional digits a Price may carry. Together
// with maxPrice it matches the numeric(19,2) columns prices are stored in.
const PriceScale = 2

var maxPrice = decimal.New(1, 19-PriceScale)

// Price is a non-negative monetary amount. Arithmetic is done on
// shopspring/decimal values so that sums of product prices compare exactly
// against menu prices; float64 never appears on the money path.
//
// Price is immutable: Add and Multiply return new values.
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice wraps amount. A negative amount, an amount with more than
// PriceScale fractional digits and an amount of 10^17 or more are rejected.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	if !amount.Equal(amount.Truncate(PriceScale)) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s has more than %d fractional digits", amount.String(), PriceScale),
		)
	}
	if amount.GreaterThanOrEqual(maxPrice) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s must be less than %s", amount.String(), maxPrice.String()),
		)
	}

	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// PriceFromString parses a decimal string such as "16000" or "12.50".
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// ZeroPrice returns a Price of 0, the identity for Add.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the wrapped decimal.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Add returns p + other.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Multiply returns p × quantity. A negative quantity is rejected because the
// result would no longer be a valid Price.
func (p Price) Multiply(quantity int64) (Price, error) {
	if quantity < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	return Price{amount: p.amount.Mul(decimal.NewFromInt(quantity)), guard: guard.NewConstructorGuard()}, nil
}

// IsGreaterThan reports p > other.
func (p Price) IsGreaterThan(other Price) bool {
	return p.amount.GreaterThan(other.amount)
}

// IsEqual compares amounts numerically, so 10 and 10.00 are equal.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.String()
}
