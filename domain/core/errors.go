package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Invalid argument errors
	ErrUnknownAdjustMethod = errors.New("unknown p-value adjustment method")

	// Data shape errors
	ErrInsufficientGroups = errors.New("fewer than two non-empty groups")
	ErrEmptyDataset       = errors.New("dataset has no records")
	ErrColumnNotFound     = errors.New("column not found")

	// Consistency errors
	ErrIncompletePairMap = errors.New("pairwise p-value map is incomplete")
)

// Error constructors with context
func NewUnknownAdjustMethodError(method string) error {
	return fmt.Errorf("%w: %q (want \"holm\" or \"bonferroni\")", ErrUnknownAdjustMethod, method)
}

func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

func NewIncompletePairError(a, b string) error {
	return fmt.Errorf("%w: missing pair (%s, %s)", ErrIncompletePairMap, a, b)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrUnknownAdjustMethod)
}

func IsDataShapeError(err error) bool {
	return errors.Is(err, ErrInsufficientGroups) ||
		errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrColumnNotFound)
}
