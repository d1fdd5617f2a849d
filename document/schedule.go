package document

import (
	"strconv"
	"strings"

	"github.com/adelantos/haberes/dto"
	"github.com/fumiama/go-docx"
)

// ScheduleSentinel marks where the amortization table goes in the template.
const ScheduleSentinel = "<cuadro_amortizacion>"

var scheduleHeader = []string{
	"Cuota N°",
	"Cuota total ($)",
	"Interés ($)",
	"Amortización ($)",
	"Saldo restante ($)",
}

// InsertSchedule blanks the sentinel tag and splices a table with one row
// per installment immediately after the sentinel's paragraph. It reports
// whether the sentinel was found.
func (t *Template) InsertSchedule(rows []dto.AmortizationRow) bool {
	for i, item := range t.doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok || !strings.Contains(paragraphText(p), ScheduleSentinel) {
			continue
		}

		replaceInParagraph(p, map[string]string{ScheduleSentinel: ""})
		table := t.buildScheduleTable(rows)

		// AddTable appended the table at the end of the body; re-anchor it
		// right after the sentinel paragraph.
		items := t.doc.Document.Body.Items
		body := items[:len(items)-1]
		out := make([]interface{}, 0, len(items))
		out = append(out, body[:i+1]...)
		out = append(out, table)
		out = append(out, body[i+1:]...)
		t.doc.Document.Body.Items = out
		return true
	}
	return false
}

func (t *Template) buildScheduleTable(rows []dto.AmortizationRow) *docx.Table {
	table := t.doc.AddTable(len(rows)+1, len(scheduleHeader), 0, nil)

	for j, label := range scheduleHeader {
		table.TableRows[0].TableCells[j].AddParagraph().AddText(label)
	}
	for i, row := range rows {
		cells := table.TableRows[i+1].TableCells
		cells[0].AddParagraph().AddText(strconv.Itoa(row.Number))
		cells[1].AddParagraph().AddText(row.Payment.StringFixed(2))
		cells[2].AddParagraph().AddText(row.Interest.StringFixed(2))
		cells[3].AddParagraph().AddText(row.Principal.StringFixed(2))
		cells[4].AddParagraph().AddText(row.Balance.StringFixed(2))
	}
	return table
}
