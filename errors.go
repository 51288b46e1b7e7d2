package topk

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrUnknownStrategy is returned for a Strategy value or name that does
	// not denote a selector implementation.
	ErrUnknownStrategy = errors.New("unknown selection strategy")
)

func validateK(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return nil
}
