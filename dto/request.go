package dto

import "github.com/shopspring/decimal"

// SimulateRequest carries the loan terms for a simulation.
type SimulateRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	// No binding on installments: the policy gate owns the [1,18] check.
	Installments int `json:"installments"`
	AnnualRate   decimal.Decimal `json:"annual_rate"`
	RequestDate  string          `json:"request_date" binding:"required"` // YYYY-MM-DD
}

// ManualSalaryRequest overrides the session salary figures when extraction
// failed and the user typed them in.
type ManualSalaryRequest struct {
	GrossSalary decimal.Decimal `json:"gross_salary" binding:"required"`
	NetSalary   decimal.Decimal `json:"net_salary" binding:"required"`
}

// NoteRequest carries the personal fields of the request form.
type NoteRequest struct {
	Name         string `json:"name"`
	Area         string `json:"area"`
	Sector       string `json:"sector"`
	Position     string `json:"position"`
	Reason       string `json:"reason"`
	ReasonDetail string `json:"reason_detail"`
}
