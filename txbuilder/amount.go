package txbuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// stroopScale is 10^7: the number of stroops in one unit of the asset
// (spec.md §8 scenario 3: amounts always have seven decimal places).
const stroopScale = 10_000_000

// ParseAmount converts a decimal amount string, with at most seven
// fractional digits, into its integer stroop count.
func ParseAmount(amount string) (int64, error) {
	if amount == "" {
		return 0, errors.New("txbuilder: empty amount")
	}
	neg := false
	s := amount
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 7 {
		return 0, fmt.Errorf("txbuilder: amount %q has more than 7 decimal places", amount)
	}
	for len(frac) < 7 {
		frac += "0"
	}
	wholeVal, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("txbuilder: invalid amount %q: %w", amount, err)
	}
	fracVal, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("txbuilder: invalid amount %q: %w", amount, err)
	}
	total := wholeVal*stroopScale + fracVal
	if neg {
		total = -total
	}
	return total, nil
}

// FormatAmount converts a stroop count into its canonical seven-decimal
// string form.
func FormatAmount(stroops int64) string {
	neg := stroops < 0
	if neg {
		stroops = -stroops
	}
	whole := stroops / stroopScale
	frac := stroops % stroopScale
	s := fmt.Sprintf("%d.%07d", whole, frac)
	if neg {
		s = "-" + s
	}
	return s
}
