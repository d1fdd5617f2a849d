package service

import (
	"testing"

	"github.com/adelantos/haberes/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	text string
	err  error
}

func (s *stubProcessor) ExtractText(pdfData []byte) (string, error) {
	return s.text, s.err
}

func TestProcessPayslip(t *testing.T) {
	text := `Apellido y Nombre:
Pérez, Juan
Codigo
100 Sueldo Basico
1.500.000,00
900 Jubilacion
165.000,00
Neto a cobrar
1.200.000,00
`
	svc := NewPayslipService(&stubProcessor{text: text})

	facts, totals, detected, err := svc.ProcessPayslip(nil)
	require.NoError(t, err)

	assert.Equal(t, "Juan Pérez", facts.EmployeeName)
	assert.True(t, totals.Gross.Equal(decimal.NewFromInt(1_500_000)))
	assert.True(t, totals.Deductions.Equal(decimal.NewFromInt(165_000)))
	assert.True(t, totals.Net.Equal(decimal.NewFromInt(1_335_000)))
	assert.Len(t, detected, 2)
}

func TestResolveSalaryPrefersConceptTotals(t *testing.T) {
	svc := NewPayslipService(&stubProcessor{})

	facts := dto.PayslipFacts{
		GrossSalary: decimal.NewFromInt(1_400_000), GrossFound: true,
		NetSalary: decimal.NewFromInt(1_100_000), NetFound: true,
	}
	totals := dto.ConceptTotals{
		Gross:      decimal.NewFromInt(1_500_000),
		Deductions: decimal.NewFromInt(165_000),
		Net:        decimal.NewFromInt(1_335_000),
	}

	salary := svc.ResolveSalary(facts, totals)
	require.NotNil(t, salary)
	assert.True(t, salary.Gross.Equal(totals.Gross))
	assert.True(t, salary.Net.Equal(totals.Net))
}

func TestResolveSalaryFallsBackToFacts(t *testing.T) {
	svc := NewPayslipService(&stubProcessor{})

	facts := dto.PayslipFacts{
		GrossSalary: decimal.NewFromInt(1_400_000), GrossFound: true,
		NetSalary: decimal.NewFromInt(1_100_000), NetFound: true,
	}

	salary := svc.ResolveSalary(facts, dto.ConceptTotals{})
	require.NotNil(t, salary)
	assert.True(t, salary.Gross.Equal(facts.GrossSalary))
}

func TestResolveSalaryNothingRecovered(t *testing.T) {
	svc := NewPayslipService(&stubProcessor{})
	assert.Nil(t, svc.ResolveSalary(dto.PayslipFacts{}, dto.ConceptTotals{}))
}
