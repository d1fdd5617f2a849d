package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adelantos/haberes/dto"
	"github.com/fumiama/go-docx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceTagsWithinRun(t *testing.T) {
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Solicito <monto> en <cuotas> cuotas")
	tpl := NewTemplate(doc)

	tpl.ReplaceTags(map[string]string{
		"<monto>":  "$100.000,00",
		"<cuotas>": "3",
	})

	p := doc.Document.Body.Items[0].(*docx.Paragraph)
	assert.Equal(t, "Solicito $100.000,00 en 3 cuotas", paragraphText(p))
}

func TestReplaceTagsSplitAcrossRuns(t *testing.T) {
	// Formatting can split a tag over adjacent runs; the paragraph-level
	// fallback still has to catch it.
	doc := docx.New().WithDefaultTheme()
	p := doc.AddParagraph()
	p.AddText("Solicito <mon")
	p.AddText("to> en pesos")
	tpl := NewTemplate(doc)

	tpl.ReplaceTags(map[string]string{"<monto>": "$100.000,00"})

	assert.Equal(t, "Solicito $100.000,00 en pesos", paragraphText(p))
}

func TestReplaceTagsInsideTableCells(t *testing.T) {
	doc := docx.New().WithDefaultTheme()
	table := doc.AddTable(1, 2, 0, nil)
	table.TableRows[0].TableCells[0].AddParagraph().AddText("Nombre: <nombre>")
	table.TableRows[0].TableCells[1].AddParagraph().AddText("Puesto: <puesto>")
	tpl := NewTemplate(doc)

	tpl.ReplaceTags(map[string]string{
		"<nombre>": "Juan Pérez",
		"<puesto>": "Analista",
	})

	assert.Equal(t, "Nombre: Juan Pérez", cellText(t, table, 0, 0))
	assert.Equal(t, "Puesto: Analista", cellText(t, table, 0, 1))
}

func TestInsertSchedule(t *testing.T) {
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Cuadro de amortización:")
	doc.AddParagraph().AddText(ScheduleSentinel)
	doc.AddParagraph().AddText("Atentamente")
	tpl := NewTemplate(doc)

	rows := []dto.AmortizationRow{
		{Number: 1, Payment: decimal.NewFromInt(30_000), Interest: decimal.Zero, Principal: decimal.NewFromInt(30_000), Balance: decimal.NewFromInt(60_000)},
		{Number: 2, Payment: decimal.NewFromInt(30_000), Interest: decimal.Zero, Principal: decimal.NewFromInt(30_000), Balance: decimal.NewFromInt(30_000)},
	}

	require.True(t, tpl.InsertSchedule(rows))

	items := doc.Document.Body.Items
	require.Len(t, items, 4)

	// The sentinel paragraph is blanked and the table sits right after it.
	sentinel := items[1].(*docx.Paragraph)
	assert.Equal(t, "", paragraphText(sentinel))

	table, ok := items[2].(*docx.Table)
	require.True(t, ok, "expected the schedule table right after the sentinel")
	require.Len(t, table.TableRows, 3)
	assert.Equal(t, "Cuota N°", cellText(t, table, 0, 0))
	assert.Equal(t, "1", cellText(t, table, 1, 0))
	assert.Equal(t, "30000.00", cellText(t, table, 1, 1))
	assert.Equal(t, "60000.00", cellText(t, table, 1, 4))
	assert.Equal(t, "30000.00", cellText(t, table, 2, 4))

	closing := items[3].(*docx.Paragraph)
	assert.Equal(t, "Atentamente", paragraphText(closing))
}

func TestInsertScheduleWithoutSentinel(t *testing.T) {
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Sin marcador")
	tpl := NewTemplate(doc)

	assert.False(t, tpl.InsertSchedule(nil))
	assert.Len(t, doc.Document.Body.Items, 1)
}

func TestFindTemplate(t *testing.T) {
	dir := t.TempDir()

	// A decoy without tags and a real template.
	writeDoc(t, filepath.Join(dir, "nota_vieja.docx"), "Sin marcadores")
	writeDoc(t, filepath.Join(dir, "nota_prestamo.docx"), "Solicito <monto>")
	writeDoc(t, filepath.Join(dir, "informe.docx"), "Con <tag> pero otro nombre")

	tpl, err := FindTemplate(dir)
	require.NoError(t, err)
	assert.True(t, tpl.HasTags())
}

func TestFindTemplateNotFound(t *testing.T) {
	_, err := FindTemplate(t.TempDir())
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func writeDoc(t *testing.T, path, text string) {
	t.Helper()
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(text)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = doc.WriteTo(f)
	require.NoError(t, err)
}

func cellText(t *testing.T, table *docx.Table, row, col int) string {
	t.Helper()
	var out string
	for _, p := range table.TableRows[row].TableCells[col].Paragraphs {
		out += paragraphText(p)
	}
	return out
}
