package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docufield/ocr-record-extraction/dto"
	"github.com/docufield/ocr-record-extraction/service"
)

type RecordHandler struct {
	recordService *service.RecordService
}

func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// ExtractRecord handles the POST /record/extract endpoint
func (h *RecordHandler) ExtractRecord(c *gin.Context) {
	log.Println("Received record extraction request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	docType := c.DefaultPostForm("doc_type", string(dto.DocTypeHandwritten))

	data, mimeType, err := readUpload(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read file", err)
		return
	}
	if !isSupportedType(mimeType) {
		h.sendError(c, http.StatusBadRequest, dto.ErrUnsupportedFileType.Error(), dto.ErrUnsupportedFileType)
		return
	}

	response, err := h.recordService.ExtractRecord(data, mimeType, docType, c.PostForm("password"))
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to extract record", err)
		return
	}

	log.Printf("Record extraction completed, %d fields found", len(response.Fields))
	c.JSON(http.StatusOK, response)
}

// VerifyRecord handles the POST /record/verify endpoint
func (h *RecordHandler) VerifyRecord(c *gin.Context) {
	log.Println("Received record verification request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	submittedData := c.PostForm("submitted_data")
	if submittedData == "" {
		h.sendError(c, http.StatusBadRequest, "submitted_data is required", nil)
		return
	}

	var submittedRaw map[string]interface{}
	if err := json.Unmarshal([]byte(submittedData), &submittedRaw); err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrInvalidSubmittedData.Error(), err)
		return
	}

	submitted := make(map[string]string, len(submittedRaw))
	for key, value := range submittedRaw {
		submitted[key] = fmt.Sprintf("%v", value)
	}

	data, mimeType, err := readUpload(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read file", err)
		return
	}
	if !isSupportedType(mimeType) {
		h.sendError(c, http.StatusBadRequest, dto.ErrUnsupportedFileType.Error(), dto.ErrUnsupportedFileType)
		return
	}

	response, err := h.recordService.VerifyRecord(data, mimeType, c.PostForm("password"), submitted)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to verify record", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}

func isSupportedType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") || mimeType == "application/pdf"
}

// sendError sends a structured error response
func (h *RecordHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
