package dto

import "github.com/shopspring/decimal"

type ConceptKind string

const (
	ConceptEarning   ConceptKind = "REM"
	ConceptDeduction ConceptKind = "DED"
)

// PayslipFacts holds the figures recovered by the positional heuristics.
// A false presence flag means the value could not be recovered with
// confidence and the caller should fall back to manual entry.
type PayslipFacts struct {
	EmployeeName string          `json:"employee_name,omitempty"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	GrossFound   bool            `json:"gross_found"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	NetFound     bool            `json:"net_found"`
}

// ConceptLine is one matched line of the payslip concepts section, kept as
// an audit trail entry.
type ConceptLine struct {
	Code    string          `json:"code"`
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Kind    ConceptKind     `json:"kind"`
	RawLine string          `json:"raw_line"`
}

type ConceptTotals struct {
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}

type AmortizationRow struct {
	Number    int             `json:"number"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// SimulationResult is the outcome of a validated loan simulation, kept in
// the session so the note can be generated later from the same figures.
type SimulationResult struct {
	Amount      decimal.Decimal   `json:"amount"`
	Installment int               `json:"installments"`
	AnnualRate  decimal.Decimal   `json:"annual_rate"`
	MonthlyRate decimal.Decimal   `json:"monthly_rate"`
	Payment     decimal.Decimal   `json:"payment"`
	RequestDate string            `json:"request_date"`
	Schedule    []AmortizationRow `json:"schedule"`
}
