// Package odds implements conversions between decimal, fractional, American,
// and implied-probability odds representations, and additive de-vigging
// (overround removal) for 2-way and N-way markets.
//
// All functions are pure and safe for concurrent use.
package odds

import "fmt"

// AmericanToDecimal converts American odds to decimal odds.
// American +150 → Decimal 2.50, American -250 → Decimal 1.40.
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("%w: american odds cannot be 0", ErrInvalidOdds)
	}

	if american > 0 {
		return (float64(american) / 100.0) + 1.0, nil
	}

	return (100.0 / float64(-american)) + 1.0, nil
}

// DecimalToAmerican converts decimal odds to American odds.
// Decimal 2.50 → +150, Decimal 1.50 → -200.
//
// The result is truncated toward zero, not rounded, matching sportsbook
// convention. This makes DecimalToAmerican a lossy inverse of
// AmericanToDecimal for most inputs; only prices landing exactly on integer
// boundaries round-trip exactly.
//
// Decimal odds of exactly 1.0 (zero payout) have no American representation
// and are rejected.
func DecimalToAmerican(decimal float64) (int, error) {
	if decimal < 1.0 {
		return 0, fmt.Errorf("%w: decimal odds must be >= 1.0, got %v", ErrInvalidOdds, decimal)
	}
	if decimal == 1.0 {
		return 0, fmt.Errorf("%w: decimal odds of 1.0 have no american representation", ErrInvalidOdds)
	}

	if decimal >= 2.0 {
		return int((decimal - 1.0) * 100.0), nil
	}

	return int(-100.0 / (decimal - 1.0)), nil
}

// DecimalToImplied converts decimal odds to the implied probability they
// encode. Decimal 8.00 → 0.125.
func DecimalToImplied(decimal float64) (float64, error) {
	if decimal <= 1.0 {
		return 0, fmt.Errorf("%w: decimal odds must be > 1.0, got %v", ErrInvalidOdds, decimal)
	}

	return 1.0 / decimal, nil
}

// ImpliedToDecimal converts an implied probability to decimal odds.
// Probability 0.125 → Decimal 8.00.
func ImpliedToDecimal(probability float64) (float64, error) {
	if probability <= 0 || probability > 1 {
		return 0, fmt.Errorf("%w: implied probability must be in (0, 1], got %v", ErrInvalidOdds, probability)
	}

	return 1.0 / probability, nil
}

// FractionalToDecimal converts fractional odds (profit : stake) to decimal
// odds. 3/2 → Decimal 2.50.
func FractionalToDecimal(numerator, denominator int64) (float64, error) {
	if denominator <= 0 {
		return 0, fmt.Errorf("%w: denominator must be positive, got %d", ErrInvalidOdds, denominator)
	}

	return (float64(numerator) / float64(denominator)) + 1.0, nil
}

// AmericanToImplied converts American odds directly to implied probability.
func AmericanToImplied(american int) (float64, error) {
	decimal, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}

	return DecimalToImplied(decimal)
}

// ImpliedToAmerican converts an implied probability directly to American odds.
func ImpliedToAmerican(probability float64) (int, error) {
	decimal, err := ImpliedToDecimal(probability)
	if err != nil {
		return 0, err
	}

	return DecimalToAmerican(decimal)
}
