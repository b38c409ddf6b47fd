package service

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/docufield/ocr-record-extraction/client"
	"github.com/docufield/ocr-record-extraction/dto"
	"github.com/docufield/ocr-record-extraction/extract"
)

// A PDF yielding fewer visible characters than this is treated as a scan
// and sent through the image OCR path instead.
const minPDFTextLen = 20

// RecordService runs the recognition pipeline and the extraction engine
// over an uploaded record document.
type RecordService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	preprocessor    *ImagePreprocessor
}

func NewRecordService(
	tesseractClient *client.TesseractClient,
	pdfProcessor PDFProcessor,
	preprocessor *ImagePreprocessor,
) *RecordService {
	return &RecordService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		preprocessor:    preprocessor,
	}
}

// ExtractRecord recognizes the document and extracts the personal-record
// fields. Recognition failure is not an error to the caller: the response
// contract (a mapping, possibly empty) holds unconditionally, with the
// failure reported through the quality status.
func (s *RecordService) ExtractRecord(data []byte, mimeType, docType, password string) (*dto.RecordExtractResponse, error) {
	rawText, img, err := s.recognize(data, mimeType, password)
	if err != nil {
		log.Printf("Recognition failed: %v", err)
		return &dto.RecordExtractResponse{
			RawText:       "",
			Fields:        map[string]string{},
			QualityStatus: dto.QualityRecognitionFailed,
			DetectedType:  docType,
		}, nil
	}

	fields := extract.ExtractFields(rawText)

	// The engine has no pattern for identifiers; a QR block on the card is
	// the one reliable source left when the label pass came up empty.
	if fields[extract.FieldID] == "" && img != nil {
		if id, err := decodeIDBarcode(img); err == nil && id != "" {
			log.Printf("ID number recovered from QR code, length %d", len(id))
			fields[extract.FieldID] = id
		}
	}

	return &dto.RecordExtractResponse{
		RawText:       rawText,
		Fields:        fieldsToMap(fields),
		QualityStatus: dto.QualityGood,
		DetectedType:  docType,
	}, nil
}

// VerifyRecord re-recognizes the document and scores each submitted value
// against the raw text with partial_ratio, the substring-alignment mode.
func (s *RecordService) VerifyRecord(data []byte, mimeType, password string, submitted map[string]string) (*dto.RecordVerifyResponse, error) {
	rawText, _, err := s.recognize(data, mimeType, password)
	if err != nil {
		log.Printf("Recognition failed during verification: %v", err)
		rawText = ""
	}
	return &dto.RecordVerifyResponse{
		Matches:               scoreSubmitted(rawText, submitted),
		OriginalExtractedText: rawText,
	}, nil
}

func scoreSubmitted(rawText string, submitted map[string]string) map[string]int {
	lowerText := strings.ToLower(rawText)

	matches := make(map[string]int, len(submitted))
	for key, value := range submitted {
		matches[key] = fuzzy.PartialRatio(strings.ToLower(value), lowerText)
	}
	return matches
}

// recognize turns the uploaded document into raw text. For images it also
// returns the decoded image so the barcode fallback can reuse it.
func (s *RecordService) recognize(data []byte, mimeType, password string) (string, image.Image, error) {
	if strings.Contains(mimeType, "pdf") {
		text, err := s.recognizePDF(data, password)
		return text, nil, err
	}

	img, err := s.preprocessor.Prepare(data)
	if err != nil {
		return "", nil, err
	}
	text, err := s.ocrImage(img)
	if err != nil {
		return "", nil, err
	}
	return text, img, nil
}

func (s *RecordService) recognizePDF(data []byte, password string) (string, error) {
	text, err := s.pdfProcessor.ExtractText(data, password)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}
	if len(strings.TrimSpace(text)) >= minPDFTextLen {
		return text, nil
	}

	// Scanned PDF: rasterized pages go through the same preparation and
	// OCR path as direct image uploads.
	log.Println("PDF has minimal embedded text, attempting image-based OCR")
	images, err := s.pdfProcessor.ExtractImages(data, password)
	if err != nil {
		return "", fmt.Errorf("failed to extract images from PDF: %w", err)
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no images found in PDF")
	}

	var combined strings.Builder
	var pageCount int
	for _, img := range images {
		pageText, err := s.ocrImage(s.preprocessor.PrepareImage(img))
		if err != nil {
			log.Printf("OCR failed for a PDF page: %v", err)
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
		pageCount++
	}
	if pageCount == 0 {
		return "", fmt.Errorf("no text recognized in scanned PDF")
	}
	return combined.String(), nil
}

func (s *RecordService) ocrImage(img image.Image) (string, error) {
	tempFile, err := saveImageToTempFile(img)
	if err != nil {
		return "", fmt.Errorf("failed to save temp image: %w", err)
	}
	defer os.Remove(tempFile)

	return s.tesseractClient.ExtractText(tempFile)
}

func saveImageToTempFile(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "record-*.png")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func fieldsToMap(fields extract.Fields) map[string]string {
	out := make(map[string]string, len(fields))
	for key, value := range fields {
		out[string(key)] = value
	}
	return out
}
