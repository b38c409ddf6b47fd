package dto

import "errors"

// Custom errors
var (
	ErrUnsupportedFileType  = errors.New("file must be an image or PDF")
	ErrInvalidSubmittedData = errors.New("submitted_data must be a JSON object")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
