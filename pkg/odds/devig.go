package odds

import (
	"fmt"
	"math"
)

// DevigTwoWay removes the overround from a 2-way market quoted in American
// odds. It returns the vig as a percentage, rounded to two decimal places,
// and the fair American odds for both outcomes.
//
// devigTwoWay(-110, -110) → (4.76, +100, +100).
func DevigTwoWay(oddsA, oddsB int, method Method) (vigPercent float64, fairA, fairB int, err error) {
	vig, fair, err := DevigNWay([]int{oddsA, oddsB}, method)
	if err != nil {
		return 0, 0, 0, err
	}

	return math.Round(vig*100) / 100, fair[0], fair[1], nil
}

// DevigNWay removes the overround from an N-way market quoted in American
// odds. The fair odds come back in input order, and the implied probabilities
// they encode sum to 1.0 up to the truncation loss of the American
// re-encoding.
//
// The market needs at least two outcomes. Conversion failures (e.g. a zero
// American price) propagate unchanged; no additional validation happens here.
func DevigNWay(americanOdds []int, method Method) (vigPercent float64, fairOdds []int, err error) {
	if method != MethodAdditive {
		return 0, nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	if len(americanOdds) < 2 {
		return 0, nil, fmt.Errorf("%w: market needs at least 2 outcomes, got %d", ErrInvalidOdds, len(americanOdds))
	}

	implied := make([]float64, len(americanOdds))
	totalBook := 0.0
	for i, american := range americanOdds {
		decimal, err := AmericanToDecimal(american)
		if err != nil {
			return 0, nil, err
		}
		p, err := DecimalToImplied(decimal)
		if err != nil {
			return 0, nil, err
		}
		implied[i] = p
		totalBook += p
	}

	vigPercent = (totalBook - 1.0) * 100.0

	fairOdds = make([]int, len(implied))
	for i, p := range implied {
		decimal, err := ImpliedToDecimal(p / totalBook)
		if err != nil {
			return 0, nil, err
		}
		american, err := DecimalToAmerican(decimal)
		if err != nil {
			return 0, nil, err
		}
		fairOdds[i] = american
	}

	return vigPercent, fairOdds, nil
}

// VigPercent reports a market's overround as a percentage without removing
// it: (sum of implied probabilities - 1) * 100. Negative only for an
// arbitrage book, which is reported, not rejected.
func VigPercent(americanOdds []int) (float64, error) {
	if len(americanOdds) < 2 {
		return 0, fmt.Errorf("%w: market needs at least 2 outcomes, got %d", ErrInvalidOdds, len(americanOdds))
	}

	totalBook := 0.0
	for _, american := range americanOdds {
		p, err := AmericanToImplied(american)
		if err != nil {
			return 0, err
		}
		totalBook += p
	}

	return (totalBook - 1.0) * 100.0, nil
}
