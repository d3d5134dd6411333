package odds

import (
	"fmt"
	"strings"
)

// Method selects the de-vig normalization technique. Only MethodAdditive is
// implemented; the other members are recognized but fail with
// ErrUnsupportedMethod so callers never fall back to additive silently.
type Method int

const (
	// MethodAdditive divides each implied probability by the total book sum
	// (proportional overround removal).
	MethodAdditive Method = iota
	// MethodSubtractive removes an equal share of the overround from each
	// outcome. Not implemented.
	MethodSubtractive
	// MethodPower fits an exponent so the powered probabilities sum to 1.
	// Not implemented.
	MethodPower
	// MethodShin corrects for insider-trading bias per Shin (1993).
	// Not implemented.
	MethodShin
)

var methodNames = map[Method]string{
	MethodAdditive:    "additive",
	MethodSubtractive: "subtractive",
	MethodPower:       "power",
	MethodShin:        "shin",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod parses a method name, case-insensitively. Unknown names fail
// with ErrUnsupportedMethod, the same kind a recognized-but-unimplemented
// method produces when used.
func ParseMethod(name string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for method, methodName := range methodNames {
		if methodName == normalized {
			return method, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
}
