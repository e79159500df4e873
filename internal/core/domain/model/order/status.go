package order

import (
	"errors"
	"fmt"
	"strings"

	"kitchenpos/internal/pkg/errs"
)

// ErrOrderAlreadyCompleted is returned when the status of a completed order is changed.
var ErrOrderAlreadyCompleted = errors.New("order is already completed")

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Cooking <──> Meal
//	   │          │
//	   └────┬─────┘
//	        v
//	    Completion (terminal)
//
// The external names are COOKING, MEAL and COMPLETION; they are what the API
// accepts and what gets persisted.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Cooking
	Meal
	Completion
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Cooking:    "COOKING",
		Meal:       "MEAL",
		Completion: "COMPLETION",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cooking:    "COOKING",
		Meal:       "MEAL",
		Completion: "COMPLETION",
	}
}

// ParseStatus maps an external status name to a Status. Matching ignores case
// and surrounding spaces.
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus", fmt.Errorf("%q is not a valid order status", name))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) IsCompleted() bool {
	return s == Completion
}

// ChangeTo returns next if the order may move there from s. Only Completion
// refuses every transition, including Completion -> Completion.
func (s Status) ChangeTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsCompleted() {
		return Unknown, fmt.Errorf("%w: %w",
			ErrOrderAlreadyCompleted, errs.NewInvalidStateTransitionError(s.String(), next.String()))
	}
	return next, nil
}
