package dto

type DocumentType string

const (
	DocTypeHandwritten DocumentType = "handwritten"
	DocTypePrinted     DocumentType = "printed"
	DocTypeAuto        DocumentType = "auto"
)

// Recognition quality statuses reported alongside extraction results.
const (
	QualityGood              = "Good"
	QualityRecognitionFailed = "RecognitionFailed"
)

// RecordExtractResponse carries the outcome of one extraction request: the
// raw recognized text plus the structured fields recovered from it. Fields
// holds only the keys a value was found for.
type RecordExtractResponse struct {
	RawText       string            `json:"raw_text"`
	Fields        map[string]string `json:"fields"`
	QualityStatus string            `json:"quality_status"`
	DetectedType  string            `json:"detected_type"`
}

// RecordVerifyResponse reports how closely each submitted field value
// appears in the recognized text, as 0-100 similarity scores.
type RecordVerifyResponse struct {
	Matches               map[string]int `json:"matches"`
	OriginalExtractedText string         `json:"original_extracted_text"`
}
