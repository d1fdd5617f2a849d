package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/adelantos/haberes/document"
	"github.com/adelantos/haberes/dto"
	"github.com/adelantos/haberes/utils"
)

var ErrIncompleteInput = errors.New("faltan datos del solicitante")

type NoteService struct {
	templateDir string
	reasons     []string
}

func NewNoteService(templateDir string, reasons []string) *NoteService {
	return &NoteService{
		templateDir: templateDir,
		reasons:     reasons,
	}
}

// GenerateNote fills the request-note template from the personal fields and
// the stored simulation, injects the amortization table at its sentinel and
// returns the document bytes. Input validation happens before any template
// is opened, so a rejected request mutates nothing.
func (s *NoteService) GenerateNote(req dto.NoteRequest, sim dto.SimulationResult, salary SalaryContext) ([]byte, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	requestDate, err := time.Parse("2006-01-02", sim.RequestDate)
	if err != nil {
		return nil, fmt.Errorf("fecha de solicitud inválida %q: %w", sim.RequestDate, err)
	}
	boardDate := utils.ThirdFriday(requestDate)
	dueDate := utils.LastBusinessDay(requestDate)
	netMinusPayment := salary.Net.Sub(sim.Payment)

	tags := map[string]string{
		"<nombre>":           req.Name,
		"<area>":             req.Area,
		"<sector>":           req.Sector,
		"<fecha>":            utils.LongDate(requestDate),
		"<fecha_directorio>": utils.LongDate(boardDate),
		"<monto>":            utils.DisplayAmount(sim.Amount),
		"<cuotas>":           strconv.Itoa(sim.Installment),
		"<motivo>":           req.Reason,
		"<motivo_detallado>": req.ReasonDetail,
		"<monto_en_letras>":  utils.AmountInWords(sim.Amount),
		"<tasa>":             sim.AnnualRate.StringFixed(2) + "%",
		"<vencimiento>":      utils.LongDate(dueDate),
		"<puesto>":           req.Position,
		"<neto_menos_cuota>": utils.DisplayAmount(netMinusPayment),
	}

	tpl, err := document.FindTemplate(s.templateDir)
	if err != nil {
		return nil, err
	}

	tpl.ReplaceTags(tags)
	tpl.InsertSchedule(sim.Schedule)

	return tpl.Bytes()
}

func (s *NoteService) validateRequest(req dto.NoteRequest) error {
	fields := map[string]string{
		"nombre":  req.Name,
		"área":    req.Area,
		"sector":  req.Sector,
		"puesto":  req.Position,
		"motivo":  req.Reason,
		"detalle": req.ReasonDetail,
	}
	for field, value := range fields {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrIncompleteInput, field)
		}
	}
	for _, reason := range s.reasons {
		if req.Reason == reason {
			return nil
		}
	}
	return fmt.Errorf("%w: motivo %q no permitido", ErrIncompleteInput, req.Reason)
}
