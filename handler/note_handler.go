package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/adelantos/haberes/document"
	"github.com/adelantos/haberes/dto"
	"github.com/adelantos/haberes/service"
	"github.com/gin-gonic/gin"
)

const noteContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type NoteHandler struct {
	noteService *service.NoteService
	sessions    *service.SessionStore
}

func NewNoteHandler(noteService *service.NoteService, sessions *service.SessionStore) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		sessions:    sessions,
	}
}

// GenerateNote handles POST /note/generate: fills the request-note template
// from the session's simulation and streams the .docx back. The stored
// simulation survives a failure here, so the caller can retry.
func (h *NoteHandler) GenerateNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid note request", err)
		return
	}

	sess, ok := h.sessions.Get(c.GetHeader(SessionHeader))
	if !ok || sess.Simulation == nil || sess.Salary == nil {
		sendError(c, http.StatusUnprocessableEntity, "MISSING_SIMULATION", "Por favor, realice primero una simulación", nil)
		return
	}

	data, err := h.noteService.GenerateNote(req, *sess.Simulation, *sess.Salary)
	switch {
	case errors.Is(err, service.ErrIncompleteInput):
		sendError(c, http.StatusBadRequest, "INCOMPLETE_INPUT", "Missing request fields", err)
		return
	case errors.Is(err, document.ErrTemplateNotFound):
		sendError(c, http.StatusInternalServerError, "TEMPLATE_NOT_FOUND", "No note template available", err)
		return
	case err != nil:
		sendError(c, http.StatusInternalServerError, "NOTE_GENERATION_FAILED", "Failed to generate note", err)
		return
	}

	log.Printf("Note generated for session %s (%d bytes)", sess.ID, len(data))
	c.Header("Content-Disposition", `attachment; filename="nota.docx"`)
	c.Data(http.StatusOK, noteContentType, data)
}
