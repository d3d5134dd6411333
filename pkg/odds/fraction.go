package odds

import (
	"fmt"
	"math/big"
)

// maxFractionDenominator bounds the denominator of fractions produced by
// DecimalToFractional. 10^6 keeps quoted fractions clean while staying well
// inside exact integer arithmetic.
const maxFractionDenominator = 1_000_000

// DecimalToFractional converts decimal odds to fractional odds
// (profit : stake) in lowest terms. Decimal 2.50 → 3/2.
//
// The net price decimal-1 is first expanded to its exact binary rational,
// then reduced to the best rational approximation with denominator at most
// 10^6, so e.g. 1.2 yields 1/5 rather than a 53-bit binary fraction.
func DecimalToFractional(decimal float64) (numerator, denominator int64, err error) {
	if decimal <= 1.0 {
		return 0, 0, fmt.Errorf("%w: decimal odds must be > 1.0, got %v", ErrInvalidOdds, decimal)
	}

	exact := new(big.Rat).SetFloat64(decimal - 1.0)
	if exact == nil {
		return 0, 0, fmt.Errorf("%w: decimal odds must be finite, got %v", ErrInvalidOdds, decimal)
	}

	frac := limitDenominator(exact, maxFractionDenominator)
	return frac.Num().Int64(), frac.Denom().Int64(), nil
}

// limitDenominator returns the closest rational to r whose denominator does
// not exceed max, via the standard continued-fraction convergent walk. Ties
// between the two candidate bounds go to the upper convergent.
func limitDenominator(r *big.Rat, max int64) *big.Rat {
	maxDen := big.NewInt(max)
	if r.Denom().Cmp(maxDen) <= 0 {
		return r
	}

	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)

	a := new(big.Int)
	rem := new(big.Int)
	for {
		a.QuoRem(n, d, rem)

		q2 := new(big.Int).Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(maxDen) > 0 {
			break
		}

		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)

		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Set(rem)
	}

	// k = (max - q0) / q1
	k := new(big.Int).Sub(maxDen, q0)
	k.Quo(k, q1)

	// First bound: (p0 + k*p1) / (q0 + k*q1). Second bound: p1/q1.
	bn := new(big.Int).Mul(k, p1)
	bn.Add(bn, p0)
	bd := new(big.Int).Mul(k, q1)
	bd.Add(bd, q0)
	bound1 := new(big.Rat).SetFrac(bn, bd)
	bound2 := new(big.Rat).SetFrac(p1, q1)

	diff1 := new(big.Rat).Sub(bound1, r)
	diff1.Abs(diff1)
	diff2 := new(big.Rat).Sub(bound2, r)
	diff2.Abs(diff2)

	if diff2.Cmp(diff1) <= 0 {
		return bound2
	}
	return bound1
}
