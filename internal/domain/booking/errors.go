package booking

import "errors"

var (
	// ErrInvalidFieldValue is returned when an edit or a saved booking violates a field constraint.
	ErrInvalidFieldValue = errors.New("invalid field value")
	ErrUnknownField      = errors.New("unknown booking field")
)
