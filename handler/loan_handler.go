package handler

import (
	"log"
	"net/http"

	"github.com/adelantos/haberes/config"
	"github.com/adelantos/haberes/dto"
	"github.com/adelantos/haberes/service"
	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanService *service.LoanService
	sessions    *service.SessionStore
}

func NewLoanHandler(loanService *service.LoanService, sessions *service.SessionStore) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		sessions:    sessions,
	}
}

// Simulate handles POST /loan/simulate: validates the loan terms against
// the session's salary figures and returns the amortization schedule.
func (h *LoanHandler) Simulate(c *gin.Context) {
	var req dto.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid simulation request", err)
		return
	}

	sess, ok := h.sessions.Get(c.GetHeader(SessionHeader))
	if !ok || sess.Salary == nil {
		sendError(c, http.StatusUnprocessableEntity, "MISSING_SALARY", "Por favor, cargue primero el recibo de sueldo", nil)
		return
	}

	sim, err := h.loanService.Simulate(req, *sess.Salary)
	if err != nil {
		sendError(c, http.StatusUnprocessableEntity, "POLICY_VIOLATION", "Loan request rejected", err)
		return
	}

	sess.Simulation = &sim
	log.Printf("Simulation stored for session %s: %s in %d installments", sess.ID, sim.Amount, sim.Installment)

	c.Header(SessionHeader, sess.ID)
	c.JSON(http.StatusOK, dto.SimulateResponse{
		SessionID:  sess.ID,
		Simulation: sim,
	})
}

// Reasons handles GET /catalog/reasons.
func (h *LoanHandler) Reasons(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ReasonsResponse{Reasons: config.Reasons})
}
