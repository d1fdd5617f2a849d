package utils

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adelantos/haberes/dto"
	"github.com/shopspring/decimal"
)

// sectionStart is the literal line that opens the concepts block of the
// payslip.
const sectionStart = "Codigo"

// ExtractConcepts walks the concepts section and sums every line matching a
// catalog code into gross (earnings) or deductions. It is the code-table
// alternative to the positional heuristics of ExtractFacts: zero matches
// yield zero totals and an empty trail, never an error.
//
// A line matches a code when it starts with the code, a single space and a
// letter; lines where the code is followed by a digit or punctuation belong
// to some other concept. The amount comes from a two-line
// quantity-then-amount pair when present, otherwise from a single amount
// line; a match with neither shape contributes nothing.
func ExtractConcepts(text string, earnings, deductions map[string]string) (dto.ConceptTotals, []dto.ConceptLine) {
	lines := strings.Split(text, "\n")
	earningCodes := sortedCodes(earnings)
	deductionCodes := sortedCodes(deductions)

	var gross, deducted decimal.Decimal
	detected := []dto.ConceptLine{}
	inSection := false

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == sectionStart {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}

		if code := firstMatchingCode(line, earningCodes); code != "" {
			if amount, ok := conceptAmount(lines, i); ok {
				gross = gross.Add(amount)
				detected = append(detected, dto.ConceptLine{
					Code:    code,
					Label:   earnings[code],
					Amount:  amount,
					Kind:    dto.ConceptEarning,
					RawLine: line,
				})
			}
			continue // a line never counts under both tables
		}
		if code := firstMatchingCode(line, deductionCodes); code != "" {
			if amount, ok := conceptAmount(lines, i); ok {
				deducted = deducted.Add(amount)
				detected = append(detected, dto.ConceptLine{
					Code:    code,
					Label:   deductions[code],
					Amount:  amount,
					Kind:    dto.ConceptDeduction,
					RawLine: line,
				})
			}
		}
	}

	totals := dto.ConceptTotals{
		Gross:      gross.Round(2),
		Deductions: deducted.Round(2),
		Net:        gross.Sub(deducted).Round(2),
	}
	return totals, detected
}

// conceptAmount resolves the amount attached to the matched line at index i:
// quantity on i+1 and amount on i+2 (quantity-times-rate layout), or a flat
// amount on i+1.
func conceptAmount(lines []string, i int) (decimal.Decimal, bool) {
	if i+2 < len(lines) && IsQuantity(lines[i+1]) && IsAmount(lines[i+2]) {
		if v, err := ParseAmount(lines[i+2]); err == nil {
			return v, true
		}
	}
	if i+1 < len(lines) && IsAmount(lines[i+1]) {
		if v, err := ParseAmount(lines[i+1]); err == nil {
			return v, true
		}
	}
	return decimal.Zero, false
}

// firstMatchingCode returns the first catalog code the line matches, or ""
// when none does. Only the first match is honored per table per line.
func firstMatchingCode(line string, codes []string) string {
	for _, code := range codes {
		rest, ok := strings.CutPrefix(line, code+" ")
		if !ok || rest == "" {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(rest); isLetter(r) {
			return code
		}
	}
	return ""
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func sortedCodes(table map[string]string) []string {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
