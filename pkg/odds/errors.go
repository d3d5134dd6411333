package odds

import "errors"

var (
	// ErrInvalidOdds is returned when an input violates a documented domain
	// precondition (zero American odds, decimal odds <= 1.0, non-positive
	// denominator, probability outside (0, 1], market with fewer than two
	// outcomes). Match with errors.Is.
	ErrInvalidOdds = errors.New("invalid odds")

	// ErrUnsupportedMethod is returned when a de-vig method other than
	// additive is requested. Recognized-but-unimplemented methods and unknown
	// method names fail the same way.
	ErrUnsupportedMethod = errors.New("unsupported de-vig method")
)
