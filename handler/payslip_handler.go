package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/adelantos/haberes/dto"
	"github.com/adelantos/haberes/service"
	"github.com/gin-gonic/gin"
)

type PayslipHandler struct {
	payslipService *service.PayslipService
	sessions       *service.SessionStore
}

func NewPayslipHandler(payslipService *service.PayslipService, sessions *service.SessionStore) *PayslipHandler {
	return &PayslipHandler{
		payslipService: payslipService,
		sessions:       sessions,
	}
}

// UploadPayslip handles the POST /payslip/upload endpoint: one PDF payslip
// as multipart field "file".
func (h *PayslipHandler) UploadPayslip(c *gin.Context) {
	log.Println("Received payslip upload request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", "No payslip file provided", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", "Failed to open uploaded file", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		sendError(c, http.StatusBadRequest, "UPLOAD_FAILED", "Failed to read uploaded file", err)
		return
	}

	facts, totals, detected, err := h.payslipService.ProcessPayslip(data)
	if err != nil {
		sendError(c, http.StatusUnprocessableEntity, "DOCUMENT_READ_FAILED", "Failed to read payslip document", err)
		return
	}

	sess := h.sessions.GetOrCreate(c.GetHeader(SessionHeader))
	sess.Facts = facts
	sess.Totals = totals
	sess.Detected = detected
	sess.Salary = h.payslipService.ResolveSalary(facts, totals)
	// A fresh payslip invalidates any earlier simulation.
	sess.Simulation = nil

	c.Header(SessionHeader, sess.ID)
	c.JSON(http.StatusOK, dto.UploadResponse{
		SessionID: sess.ID,
		Facts:     facts,
		Totals:    totals,
		Detected:  detected,
	})
}

// SetManualSalary handles POST /payslip/manual: the fallback entry when
// extraction could not recover the figures.
func (h *PayslipHandler) SetManualSalary(c *gin.Context) {
	var req dto.ManualSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid manual salary request", err)
		return
	}

	sess := h.sessions.GetOrCreate(c.GetHeader(SessionHeader))
	sess.Salary = &service.SalaryContext{Gross: req.GrossSalary, Net: req.NetSalary}
	sess.Simulation = nil

	c.Header(SessionHeader, sess.ID)
	c.JSON(http.StatusOK, gin.H{"session_id": sess.ID})
}
