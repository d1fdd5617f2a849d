package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
}

type pdfProcessor struct {
	conf *model.Configuration
}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{conf: model.NewDefaultConfiguration()}
}

// ExtractText validates the container and returns the text layer of every
// page, one extracted row per line. A failure here is the only hard failure
// of the extraction pipeline; the heuristics downstream degrade silently.
func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	if err := api.Validate(bytes.NewReader(pdfData), p.conf); err != nil {
		return "", fmt.Errorf("invalid PDF document: %w", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder bytes.Buffer
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}
