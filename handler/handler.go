package handler

import (
	"log"

	"github.com/adelantos/haberes/dto"
	"github.com/gin-gonic/gin"
)

// SessionHeader carries the opaque session token between actions.
const SessionHeader = "X-Session-Id"

func sendError(c *gin.Context, statusCode int, code string, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: errorMsg,
		Code:    statusCode,
	})
}
