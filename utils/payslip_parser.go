package utils

import (
	"strings"

	"github.com/adelantos/haberes/dto"
	"github.com/shopspring/decimal"
)

const nameLabel = "Apellido y Nombre:"

// Lines that contain one of these tokens are other payslip fields, never the
// employee name.
var nameStopTokens = []string{"Categoria:", "Cargo:", "Egreso:", "Codigo", "Concepto"}

// grossFloor is the threshold a near-bottom figure must exceed to be a gross
// salary candidate: on this payslip format the gross is reliably the largest
// printed value above one million pesos.
var grossFloor = decimal.NewFromInt(1_000_000)

// ExtractFacts recovers the employee name and a best-effort (gross, net)
// pair from the payslip text using positional heuristics. Failure to
// recover the figures is not an error: the zero value is returned and the
// caller falls back to manual entry.
func ExtractFacts(text string) dto.PayslipFacts {
	lines := strings.Split(text, "\n")

	name := extractName(lines)

	var values []decimal.Decimal
	for _, line := range lines {
		if IsQuantity(line) {
			if v, err := ParseAmount(line); err == nil {
				values = append(values, v)
			}
		}
	}

	if len(values) < 2 {
		return dto.PayslipFacts{}
	}

	net := values[len(values)-1]

	// The gross is the maximum among the last six figures above the floor.
	tail := values
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	var gross decimal.Decimal
	grossFound := false
	for _, v := range tail {
		if v.GreaterThan(grossFloor) && (!grossFound || v.GreaterThan(gross)) {
			gross = v
			grossFound = true
		}
	}
	if !grossFound {
		return dto.PayslipFacts{}
	}

	return dto.PayslipFacts{
		EmployeeName: name,
		GrossSalary:  gross,
		GrossFound:   true,
		NetSalary:    net,
		NetFound:     true,
	}
}

// extractName scans for the name label, then forward for the first
// "Apellido, Nombre" line free of other field labels, and flips it to
// "Nombre Apellido". An empty result means the name was not recovered.
func extractName(lines []string) string {
	for i, line := range lines {
		if !strings.Contains(line, nameLabel) {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			candidate := strings.TrimSpace(lines[j])
			if !strings.Contains(candidate, ",") || containsStopToken(candidate) {
				continue
			}
			lastName, firstName, _ := strings.Cut(candidate, ",")
			return strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName)
		}
		break
	}
	return ""
}

func containsStopToken(line string) bool {
	for _, token := range nameStopTokens {
		if strings.Contains(line, token) {
			return true
		}
	}
	return false
}
