// Package domain contains the core simulation engine: the clonal structure
// resolver, the mutation group generator, and the stochastic samplers.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks validation failures. It is always raised before
// any random draw, so a failed call has generated nothing.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
