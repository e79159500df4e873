package table

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// NumberOfGuests is the head count seated at a table. It is never negative.
type NumberOfGuests int

// NewNumberOfGuests validates count.
func NewNumberOfGuests(count int) (NumberOfGuests, error) {
	if count < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("numberOfGuests", fmt.Errorf("%d is negative", count))
	}
	return NumberOfGuests(count), nil
}

func (n NumberOfGuests) Int() int {
	return int(n)
}
