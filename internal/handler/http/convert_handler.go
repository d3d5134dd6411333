package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cypherlabdev/odds-devig-service/pkg/odds"
)

// ConvertResponse is the response of GET /api/v1/convert
type ConvertResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Input  string `json:"input"`
	Result string `json:"result"`
}

// handleConvert handles GET /api/v1/convert?from=&to=&value=
//
// Supported formats: american (e.g. -110), decimal (e.g. 1.91),
// fractional (e.g. 10/11), implied (e.g. 0.5238).
func (h *DevigHandler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	from := strings.ToLower(r.URL.Query().Get("from"))
	to := strings.ToLower(r.URL.Query().Get("to"))
	value := r.URL.Query().Get("value")

	if from == "" || to == "" || value == "" {
		h.errorResponse(w, http.StatusBadRequest, "from, to, and value are required")
		return
	}

	// Pivot through decimal odds, then re-encode in the target format.
	decimalOdds, err := parseToDecimal(from, value)
	if err != nil {
		h.oddsErrorResponse(w, err)
		return
	}

	result, err := formatFromDecimal(to, decimalOdds)
	if err != nil {
		h.oddsErrorResponse(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, ConvertResponse{
		From:   from,
		To:     to,
		Input:  value,
		Result: result,
	})
}

// parseToDecimal parses a price in the named format and converts it to
// decimal odds
func parseToDecimal(format, value string) (float64, error) {
	switch format {
	case "american":
		american, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%w: american odds must be an integer, got %q", odds.ErrInvalidOdds, value)
		}
		return odds.AmericanToDecimal(american)

	case "decimal":
		decimal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: decimal odds must be a number, got %q", odds.ErrInvalidOdds, value)
		}
		return decimal, nil

	case "fractional":
		num, den, err := parseFraction(value)
		if err != nil {
			return 0, err
		}
		return odds.FractionalToDecimal(num, den)

	case "implied":
		probability, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: implied probability must be a number, got %q", odds.ErrInvalidOdds, value)
		}
		return odds.ImpliedToDecimal(probability)

	default:
		return 0, fmt.Errorf("%w: unknown odds format %q", odds.ErrInvalidOdds, format)
	}
}

// formatFromDecimal converts decimal odds to the named format and renders it
func formatFromDecimal(format string, decimal float64) (string, error) {
	switch format {
	case "american":
		american, err := odds.DecimalToAmerican(decimal)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(american), nil

	case "decimal":
		return strconv.FormatFloat(decimal, 'f', -1, 64), nil

	case "fractional":
		num, den, err := odds.DecimalToFractional(decimal)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d/%d", num, den), nil

	case "implied":
		probability, err := odds.DecimalToImplied(decimal)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(probability, 'f', -1, 64), nil

	default:
		return "", fmt.Errorf("%w: unknown odds format %q", odds.ErrInvalidOdds, format)
	}
}

// parseFraction parses "num/den" fractional notation
func parseFraction(value string) (int64, int64, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: fractional odds must look like 3/2, got %q", odds.ErrInvalidOdds, value)
	}

	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: fractional numerator must be an integer, got %q", odds.ErrInvalidOdds, parts[0])
	}

	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: fractional denominator must be an integer, got %q", odds.ErrInvalidOdds, parts[1])
	}

	return num, den, nil
}
