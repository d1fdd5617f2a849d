package main

import (
	"log"

	"github.com/adelantos/haberes/config"
	"github.com/adelantos/haberes/handler"
	"github.com/adelantos/haberes/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	sessions := service.NewSessionStore()
	payslipService := service.NewPayslipService(pdfProcessor)
	loanService := service.NewLoanService(config.TopeMaximoPrestamo)
	noteService := service.NewNoteService(cfg.TemplateDir, config.Reasons)

	// Initialize handler layer
	payslipHandler := handler.NewPayslipHandler(payslipService, sessions)
	loanHandler := handler.NewLoanHandler(loanService, sessions)
	noteHandler := handler.NewNoteHandler(noteService, sessions)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Sistema de Adelantos Haberes",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		payslip := api.Group("/payslip")
		{
			payslip.POST("/upload", payslipHandler.UploadPayslip)
			payslip.POST("/manual", payslipHandler.SetManualSalary)
		}
		loan := api.Group("/loan")
		{
			loan.POST("/simulate", loanHandler.Simulate)
		}
		note := api.Group("/note")
		{
			note.POST("/generate", noteHandler.GenerateNote)
		}
		api.GET("/catalog/reasons", loanHandler.Reasons)
	}

	// Start server
	log.Printf("Starting Salary Advance Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
