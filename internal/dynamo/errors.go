package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for configuration and rendering.
var (
	// ErrInvalidPreset indicates a preset entry with a missing or malformed field.
	ErrInvalidPreset = errors.New("dynamo: invalid preset")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrNonFinite indicates a NaN or Inf coordinate.
	ErrNonFinite = errors.New("dynamo: non-finite value (NaN or Inf detected)")

	// ErrContextCanceled indicates the frame loop was stopped.
	ErrContextCanceled = errors.New("dynamo: render canceled by context")

	// ErrUnknownPattern indicates a pattern name outside the closed set.
	ErrUnknownPattern = errors.New("dynamo: unknown pattern")
)

// PresetError wraps an error with the offending preset entry.
type PresetError struct {
	Index   int
	Field   string
	Wrapped error
}

func (e *PresetError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("preset %d: %v", e.Index, e.Wrapped)
	}
	return fmt.Sprintf("preset %d: field %q: %v", e.Index, e.Field, e.Wrapped)
}

func (e *PresetError) Unwrap() error {
	return e.Wrapped
}
