package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/docufield/ocr-record-extraction/client"
	"github.com/docufield/ocr-record-extraction/config"
	"github.com/docufield/ocr-record-extraction/handler"
	"github.com/docufield/ocr-record-extraction/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Tesseract v5 reads the tessdata location from the environment
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	log.Println("TESSDATA_PREFIX set to:", os.Getenv("TESSDATA_PREFIX"))

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor and image preprocessor
	pdfProcessor := service.NewPDFProcessor()
	preprocessor := service.NewImagePreprocessor(cfg.DebugImageDir)

	// Initialize service layer
	recordService := service.NewRecordService(tesseractClient, pdfProcessor, preprocessor)

	// Initialize handler layer
	recordHandler := handler.NewRecordHandler(recordService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "OCR Record Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		record := api.Group("/record")
		{
			record.POST("/extract", recordHandler.ExtractRecord)
			record.POST("/verify", recordHandler.VerifyRecord)
		}
	}

	// Start server
	log.Printf("Starting OCR Record Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
