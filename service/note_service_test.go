package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adelantos/haberes/document"
	"github.com/adelantos/haberes/dto"
	"github.com/fumiama/go-docx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testReasons = []string{"Salud", "Vivienda", "Otros"}

func testNoteRequest() dto.NoteRequest {
	return dto.NoteRequest{
		Name:         "Juan Pérez",
		Area:         "Administración",
		Sector:       "Finanzas",
		Position:     "Analista",
		Reason:       "Vivienda",
		ReasonDetail: "Refacción de vivienda",
	}
}

func testSimulation() dto.SimulationResult {
	return dto.SimulationResult{
		Amount:      decimal.NewFromInt(90_000),
		Installment: 3,
		AnnualRate:  decimal.Zero,
		MonthlyRate: decimal.Zero,
		Payment:     decimal.NewFromInt(30_000),
		RequestDate: "2026-01-10",
		Schedule: []dto.AmortizationRow{
			{Number: 1, Payment: decimal.NewFromInt(30_000), Balance: decimal.NewFromInt(60_000)},
			{Number: 2, Payment: decimal.NewFromInt(30_000), Balance: decimal.NewFromInt(30_000)},
			{Number: 3, Payment: decimal.NewFromInt(30_000), Balance: decimal.Zero},
		},
	}
}

func TestGenerateNoteIncompleteInput(t *testing.T) {
	svc := NewNoteService(t.TempDir(), testReasons)

	req := testNoteRequest()
	req.Area = ""

	_, err := svc.GenerateNote(req, testSimulation(), testSalary())
	assert.ErrorIs(t, err, ErrIncompleteInput)
}

func TestGenerateNoteUnknownReason(t *testing.T) {
	svc := NewNoteService(t.TempDir(), testReasons)

	req := testNoteRequest()
	req.Reason = "Vacaciones"

	_, err := svc.GenerateNote(req, testSimulation(), testSalary())
	assert.ErrorIs(t, err, ErrIncompleteInput)
}

func TestGenerateNoteTemplateNotFound(t *testing.T) {
	svc := NewNoteService(t.TempDir(), testReasons)

	_, err := svc.GenerateNote(testNoteRequest(), testSimulation(), testSalary())
	assert.ErrorIs(t, err, document.ErrTemplateNotFound)
}

func TestGenerateNote(t *testing.T) {
	dir := t.TempDir()
	writeNoteTemplate(t, filepath.Join(dir, "nota_adelanto.docx"))

	svc := NewNoteService(dir, testReasons)

	data, err := svc.GenerateNote(testNoteRequest(), testSimulation(), testSalary())
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// The output parses back as a document with no tags left in it.
	tpl, err := document.NewTemplateFromBytes(data)
	require.NoError(t, err)
	assert.False(t, tpl.HasTags())
}

func writeNoteTemplate(t *testing.T, path string) {
	t.Helper()
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Solicitud de adelanto de haberes")
	doc.AddParagraph().AddText("Nombre: <nombre>, puesto <puesto>, área <area>, sector <sector>")
	doc.AddParagraph().AddText("Fecha <fecha>, directorio <fecha_directorio>, vencimiento <vencimiento>")
	doc.AddParagraph().AddText("Monto <monto> (<monto_en_letras>) en <cuotas> cuotas a tasa <tasa>")
	doc.AddParagraph().AddText("Motivo: <motivo>. <motivo_detallado>")
	doc.AddParagraph().AddText("Neto menos cuota: <neto_menos_cuota>")
	doc.AddParagraph().AddText("<cuadro_amortizacion>")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = doc.WriteTo(f)
	require.NoError(t, err)
}
