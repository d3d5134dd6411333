package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAmericanToDecimal tests American to decimal conversion
func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american int
		expected float64
	}{
		{"Underdog +150", 150, 2.5},
		{"Favorite -250", -250, 1.4},
		{"Even money +100", 100, 2.0},
		{"Even money -100", -100, 2.0},
		{"Standard -110", -110, 1.9090909090909092},
		{"Big underdog +600", 600, 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decimal, err := AmericanToDecimal(tt.american)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, decimal, 1e-12)
		})
	}
}

// TestAmericanToDecimal_Zero tests that zero American odds are rejected
func TestAmericanToDecimal_Zero(t *testing.T) {
	_, err := AmericanToDecimal(0)
	assert.ErrorIs(t, err, ErrInvalidOdds)
}

// TestDecimalToAmerican tests decimal to American conversion
func TestDecimalToAmerican(t *testing.T) {
	tests := []struct {
		name     string
		decimal  float64
		expected int
	}{
		{"Decimal 2.5", 2.5, 150},
		{"Decimal 1.5", 1.5, -200},
		{"Decimal 2.0 boundary", 2.0, 100},
		{"Decimal 1.4", 1.4, -250},
		{"Decimal 4.5", 4.5, 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			american, err := DecimalToAmerican(tt.decimal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, american)
		})
	}
}

// TestDecimalToAmerican_Truncates pins down truncation toward zero, the
// sportsbook convention. 2.346 encodes +134.6 but quotes as +134, and 1.91
// encodes -109.89 but quotes as -109.
func TestDecimalToAmerican_Truncates(t *testing.T) {
	american, err := DecimalToAmerican(2.346)
	require.NoError(t, err)
	assert.Equal(t, 134, american)

	american, err = DecimalToAmerican(1.91)
	require.NoError(t, err)
	assert.Equal(t, -109, american)
}

// TestDecimalToAmerican_InvalidInput tests domain violations
func TestDecimalToAmerican_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		decimal float64
	}{
		{"Below 1.0", 0.5},
		{"Zero", 0},
		{"Negative", -2.5},
		{"Exactly 1.0 has no american price", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecimalToAmerican(tt.decimal)
			assert.ErrorIs(t, err, ErrInvalidOdds)
		})
	}
}

// TestDecimalToImplied tests decimal odds to implied probability conversion
func TestDecimalToImplied(t *testing.T) {
	tests := []struct {
		name     string
		decimal  float64
		expected float64
	}{
		{"Decimal 8.0", 8.0, 0.125},
		{"Decimal 2.0", 2.0, 0.5},
		{"Decimal 2.5", 2.5, 0.4},
		{"Decimal 4.0", 4.0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probability, err := DecimalToImplied(tt.decimal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, probability)
		})
	}
}

// TestDecimalToImplied_InvalidInput tests domain violations
func TestDecimalToImplied_InvalidInput(t *testing.T) {
	for _, decimal := range []float64{1.0, 0.99, 0, -3} {
		_, err := DecimalToImplied(decimal)
		assert.ErrorIs(t, err, ErrInvalidOdds)
	}
}

// TestImpliedToDecimal tests implied probability to decimal odds conversion
func TestImpliedToDecimal(t *testing.T) {
	probability, err := ImpliedToDecimal(0.125)
	require.NoError(t, err)
	assert.Equal(t, 8.0, probability)

	// Probability of exactly 1 is valid: a certainty prices at decimal 1.0
	decimal, err := ImpliedToDecimal(1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, decimal)
}

// TestImpliedToDecimal_InvalidInput tests domain violations
func TestImpliedToDecimal_InvalidInput(t *testing.T) {
	for _, probability := range []float64{0, -0.5, 1.0001, 2} {
		_, err := ImpliedToDecimal(probability)
		assert.ErrorIs(t, err, ErrInvalidOdds)
	}
}

// TestFractionalToDecimal tests fractional to decimal conversion
func TestFractionalToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		expected float64
	}{
		{"3/2", 3, 2, 2.5},
		{"1/1 evens", 1, 1, 2.0},
		{"10/11", 10, 11, 1.9090909090909092},
		{"Zero numerator", 0, 5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decimal, err := FractionalToDecimal(tt.num, tt.den)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, decimal, 1e-12)
		})
	}
}

// TestFractionalToDecimal_InvalidDenominator tests domain violations
func TestFractionalToDecimal_InvalidDenominator(t *testing.T) {
	for _, den := range []int64{0, -2} {
		_, err := FractionalToDecimal(3, den)
		assert.ErrorIs(t, err, ErrInvalidOdds)
	}
}

// TestRoundTrip_AmericanDecimalAmerican tests that exact integer-boundary
// prices survive the lossy round trip exactly
func TestRoundTrip_AmericanDecimalAmerican(t *testing.T) {
	tests := []int{150, -200, 100, -110, 350, 600, -250, -240}

	for _, american := range tests {
		decimal, err := AmericanToDecimal(american)
		require.NoError(t, err)

		roundTripped, err := DecimalToAmerican(decimal)
		require.NoError(t, err)

		// Truncation can lose at most one unit
		assert.InDelta(t, american, roundTripped, 1,
			"american %d → decimal %v → american %d", american, decimal, roundTripped)
	}

	// Exact multiples land exactly
	decimal, _ := AmericanToDecimal(150)
	american, _ := DecimalToAmerican(decimal)
	assert.Equal(t, 150, american)

	decimal, _ = AmericanToDecimal(-200)
	american, _ = DecimalToAmerican(decimal)
	assert.Equal(t, -200, american)
}

// TestRoundTrip_ImpliedProbability tests the exact reciprocal round trip
func TestRoundTrip_ImpliedProbability(t *testing.T) {
	for _, decimal := range []float64{2.5, 8.0, 2.0, 1.25, 4.0, 16.0} {
		probability, err := DecimalToImplied(decimal)
		require.NoError(t, err)

		roundTripped, err := ImpliedToDecimal(probability)
		require.NoError(t, err)

		assert.Equal(t, decimal, roundTripped)
	}
}

// TestAmericanToImplied tests the direct American to probability shortcut
func TestAmericanToImplied(t *testing.T) {
	probability, err := AmericanToImplied(-110)
	require.NoError(t, err)
	assert.InDelta(t, 0.5238095238, probability, 1e-9)

	_, err = AmericanToImplied(0)
	assert.ErrorIs(t, err, ErrInvalidOdds)
}

// TestImpliedToAmerican tests the direct probability to American shortcut
func TestImpliedToAmerican(t *testing.T) {
	american, err := ImpliedToAmerican(0.4)
	require.NoError(t, err)
	assert.Equal(t, 150, american)

	_, err = ImpliedToAmerican(0)
	assert.ErrorIs(t, err, ErrInvalidOdds)
}
