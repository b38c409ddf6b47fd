package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFields(t *testing.T) {
	text := "Name: Ravi Kumar 45\nGender: Male\nPhone: 98765-43210\nAddress: 12 MG Road, Pune"

	fields := ExtractFields(text)

	assert.Equal(t, "Ravi Kumar", fields[FieldName])
	assert.Equal(t, "45", fields[FieldAge])
	assert.Equal(t, "Male", fields[FieldGender])
	assert.Equal(t, "98765-43210", fields[FieldPhone])
	assert.Equal(t, "12 MG Road, Pune", fields[FieldAddress])
	assert.NotContains(t, fields, FieldEmail)
	assert.NotContains(t, fields, FieldID)
}

func TestExtractFieldsDevanagariDigits(t *testing.T) {
	fields := ExtractFields("आयु: ४५")

	assert.Equal(t, "45", fields[FieldAge])
}

func TestExtractFieldsFusedLine(t *testing.T) {
	fields := ExtractFields("Name: Amit Email: amit@x.com")

	assert.Equal(t, "Amit", fields[FieldName])
	assert.Equal(t, "amit@x.com", fields[FieldEmail])
}

func TestExtractFieldsValueOnNextLine(t *testing.T) {
	text := "Name:\nRavi Kumar\nAge: 30"

	fields := ExtractFields(text)

	assert.Equal(t, "Ravi Kumar", fields[FieldName])
	assert.Equal(t, "30", fields[FieldAge])
}

func TestExtractFieldsMultiLineAddress(t *testing.T) {
	text := "Address: 12 MG Road\nShivaji Nagar\nPune 411005\nCountry: India"

	fields := ExtractFields(text)

	assert.Equal(t, "12 MG Road, Shivaji Nagar, Pune 411005", fields[FieldAddress])
}

func TestExtractFieldsGenderFallbackOrder(t *testing.T) {
	// Both options appear as checkbox text; the first match by search
	// order wins, which is Male.
	fields := ExtractFields("Male Female form with no explicit Gender: label")

	assert.Equal(t, "Male", fields[FieldGender])
	assert.NotContains(t, fields, FieldName)
}

func TestExtractFieldsNoLabels(t *testing.T) {
	assert.Empty(t, ExtractFields(""))
	assert.Empty(t, ExtractFields("12345\n@@@@"))
}

func TestSegmentFusedLines(t *testing.T) {
	segments := segmentLines("Name: Amit Email: amit@x.com")

	assert.Equal(t, []string{"Name: Amit", "Email: amit@x.com"}, segments)
}

func TestSegmentLeavesSingleLabelAlone(t *testing.T) {
	segments := segmentLines("Address: 12 MG Road, Pune")

	assert.Equal(t, []string{"Address: 12 MG Road, Pune"}, segments)
}
