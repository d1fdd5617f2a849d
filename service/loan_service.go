package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/adelantos/haberes/dto"
	"github.com/adelantos/haberes/utils"
	"github.com/shopspring/decimal"
)

// Policy violations, in the order the gates run. The first failing gate is
// reported and the remaining checks are skipped.
var (
	ErrInstallmentsOutOfRange = errors.New("la cantidad de cuotas debe ser entre 1 y 18")
	ErrExceedsLoanCap         = errors.New("el monto excede el tope máximo permitido")
	ErrExceedsGrossMultiple   = errors.New("el monto excede 3 veces el sueldo bruto")
	ErrInstallmentTooHigh     = errors.New("la cuota mensual excede el 30% del sueldo neto")
)

const (
	minInstallments = 1
	maxInstallments = 18
)

var (
	three          = decimal.NewFromInt(3)
	affordableRate = decimal.NewFromFloat(0.3)
)

// SalaryContext carries the gross/net figures a loan is validated against.
type SalaryContext struct {
	Gross decimal.Decimal
	Net   decimal.Decimal
}

type LoanService struct {
	maxAmount decimal.Decimal
}

func NewLoanService(maxAmount decimal.Decimal) *LoanService {
	return &LoanService{maxAmount: maxAmount}
}

// MonthlyRate converts an annual percentage rate to the monthly fraction.
func (s *LoanService) MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(decimal.NewFromInt(1200))
}

// MonthlyPayment computes the fixed installment by the French (annuity)
// method. A zero rate degenerates to principal/n.
func (s *LoanService) MonthlyPayment(amount decimal.Decimal, installments int, annualRate decimal.Decimal) decimal.Decimal {
	n := decimal.NewFromInt(int64(installments))
	r := s.MonthlyRate(annualRate)
	if r.IsZero() {
		return amount.Div(n)
	}
	factor := decimal.NewFromInt(1).Add(r).Pow(n)
	return amount.Mul(r).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
}

// Schedule produces the amortization table: per-row monetary fields rounded
// to two decimals for presentation, the running balance carried at full
// precision between rows and clamped to zero at the end.
func (s *LoanService) Schedule(amount decimal.Decimal, installments int, annualRate decimal.Decimal) []dto.AmortizationRow {
	r := s.MonthlyRate(annualRate)
	payment := s.MonthlyPayment(amount, installments, annualRate)
	balance := amount

	rows := make([]dto.AmortizationRow, 0, installments)
	for i := 1; i <= installments; i++ {
		interest := balance.Mul(r)
		principal := payment.Sub(interest)
		balance = balance.Sub(principal)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		rows = append(rows, dto.AmortizationRow{
			Number:    i,
			Payment:   payment.Round(2),
			Interest:  interest.Round(2),
			Principal: principal.Round(2),
			Balance:   balance.Round(2),
		})
	}
	return rows
}

// Validate runs the four policy gates in order against the salary context.
func (s *LoanService) Validate(amount decimal.Decimal, installments int, annualRate decimal.Decimal, salary SalaryContext) error {
	if installments < minInstallments || installments > maxInstallments {
		return ErrInstallmentsOutOfRange
	}
	if amount.GreaterThan(s.maxAmount) {
		return fmt.Errorf("%w: $%s", ErrExceedsLoanCap, utils.FormatAmount(s.maxAmount))
	}
	if amount.GreaterThan(salary.Gross.Mul(three)) {
		return ErrExceedsGrossMultiple
	}
	payment := s.MonthlyPayment(amount, installments, annualRate)
	if payment.GreaterThan(salary.Net.Mul(affordableRate)) {
		return ErrInstallmentTooHigh
	}
	return nil
}

// Simulate validates the request and builds the full simulation result.
func (s *LoanService) Simulate(req dto.SimulateRequest, salary SalaryContext) (dto.SimulationResult, error) {
	if _, err := time.Parse("2006-01-02", req.RequestDate); err != nil {
		return dto.SimulationResult{}, fmt.Errorf("fecha de solicitud inválida %q: %w", req.RequestDate, err)
	}
	if err := s.Validate(req.Amount, req.Installments, req.AnnualRate, salary); err != nil {
		return dto.SimulationResult{}, err
	}

	return dto.SimulationResult{
		Amount:      req.Amount,
		Installment: req.Installments,
		AnnualRate:  req.AnnualRate,
		MonthlyRate: s.MonthlyRate(req.AnnualRate).Round(6),
		Payment:     s.MonthlyPayment(req.Amount, req.Installments, req.AnnualRate).Round(2),
		RequestDate: req.RequestDate,
		Schedule:    s.Schedule(req.Amount, req.Installments, req.AnnualRate),
	}, nil
}
