package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Payslip amounts use Argentine grouping: "." for thousands, "," for the two
// decimal digits. A quantity is the same shape but never negative.
var (
	amountRegex   = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})*,\d{2}$`)
	quantityRegex = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})*,\d{2}$`)
)

// IsAmount reports whether the trimmed line is a grouped es-AR amount,
// optionally negative.
func IsAmount(s string) bool {
	return amountRegex.MatchString(strings.TrimSpace(s))
}

// IsQuantity reports whether the trimmed line is a non-negative grouped
// es-AR numeral.
func IsQuantity(s string) bool {
	return quantityRegex.MatchString(strings.TrimSpace(s))
}

// ParseAmount converts "1.234.567,89" to its decimal value.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountRegex.MatchString(s) {
		return decimal.Zero, fmt.Errorf("not a valid amount: %q", s)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	return d, nil
}

// FormatAmount renders a decimal back to the grouped es-AR representation,
// always with two decimal digits: 1234567.89 -> "1.234.567,89".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// DisplayAmount renders a decimal as Argentine pesos for the note,
// e.g. "$1.234.567,89".
func DisplayAmount(d decimal.Decimal) string {
	minor := d.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
	return money.New(minor, money.ARS).Display()
}
