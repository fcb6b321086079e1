package core

import "errors"

// Error taxonomy for the generator pipeline. Each fallible stage wraps one of
// these sentinels so callers can classify failures with errors.Is while still
// seeing the specific detail in the message.
var (
	// ErrInvalidSpec marks a column spec rejected before any value is
	// drawn: a null probability outside [0, 1] or an inverted domain.
	ErrInvalidSpec = errors.New("invalid column spec")

	// ErrOffsetRange marks a list spec whose offsets cannot satisfy
	// monotonicity or child bounds.
	ErrOffsetRange = errors.New("list offsets out of range")

	// ErrDuplicateField marks two columns assembled under the same name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrDuplicateMetadataKey marks a repeated schema metadata key.
	ErrDuplicateMetadataKey = errors.New("duplicate metadata key")

	// ErrBatchValidation marks a structural invariant violated in an
	// assembled batch.
	ErrBatchValidation = errors.New("batch validation failed")
)
