package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docufield/ocr-record-extraction/extract"
)

func TestScoreSubmitted(t *testing.T) {
	raw := "Name: Ravi Kumar\nPhone: 9876543210"

	scores := scoreSubmitted(raw, map[string]string{
		"name":  "Ravi Kumar",
		"phone": "0000011111",
	})

	assert.Equal(t, 100, scores["name"], "exact substring should score a full match")
	assert.Less(t, scores["phone"], 100)
}

func TestScoreSubmittedIsCaseInsensitive(t *testing.T) {
	raw := "NAME: RAVI KUMAR"

	scores := scoreSubmitted(raw, map[string]string{"name": "ravi kumar"})

	assert.Equal(t, 100, scores["name"])
}

func TestFieldsToMap(t *testing.T) {
	fields := extract.Fields{
		extract.FieldName: "Ravi Kumar",
		extract.FieldAge:  "45",
	}

	assert.Equal(t, map[string]string{"name": "Ravi Kumar", "age": "45"}, fieldsToMap(fields))
}
