package service

import (
	"github.com/adelantos/haberes/config"
	"github.com/adelantos/haberes/dto"
	"github.com/adelantos/haberes/utils"
)

type PayslipService struct {
	pdfProcessor PDFProcessor
}

func NewPayslipService(pdfProcessor PDFProcessor) *PayslipService {
	return &PayslipService{
		pdfProcessor: pdfProcessor,
	}
}

// ProcessPayslip runs both extractors over the payslip text: the positional
// facts (name, bruto/neto) and the code-table concept totals with their
// audit trail. Only an unreadable document returns an error; extraction
// misses surface as absent values.
func (s *PayslipService) ProcessPayslip(data []byte) (dto.PayslipFacts, dto.ConceptTotals, []dto.ConceptLine, error) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		return dto.PayslipFacts{}, dto.ConceptTotals{}, nil, err
	}

	facts := utils.ExtractFacts(text)
	totals, detected := utils.ExtractConcepts(text, config.EarningCodes, config.DeductionCodes)
	return facts, totals, detected, nil
}

// ResolveSalary picks the salary context used by the policy gates: the
// concept totals when the scan matched anything, otherwise the positional
// facts. Nil means neither path recovered figures and the caller must
// provide them manually.
func (s *PayslipService) ResolveSalary(facts dto.PayslipFacts, totals dto.ConceptTotals) *SalaryContext {
	if totals.Gross.IsPositive() {
		return &SalaryContext{Gross: totals.Gross, Net: totals.Net}
	}
	if facts.GrossFound && facts.NetFound {
		return &SalaryContext{Gross: facts.GrossSalary, Net: facts.NetSalary}
	}
	return nil
}
