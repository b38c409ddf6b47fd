package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefineFieldsSplitsBleed(t *testing.T) {
	fields := Fields{FieldName: "Ravi Kumar Phone 9876543210"}

	refineFields(fields)

	assert.Equal(t, "Ravi Kumar", fields[FieldName])
	assert.Equal(t, "9876543210", fields[FieldPhone])
}

func TestRefineFieldsKeepsBleedTargetWhenPopulated(t *testing.T) {
	fields := Fields{
		FieldName:  "Ravi Kumar Phone 9876543210",
		FieldPhone: "1112223334",
	}

	refineFields(fields)

	assert.Equal(t, "Ravi Kumar", fields[FieldName])
	assert.Equal(t, "1112223334", fields[FieldPhone])
}

func TestRefineFieldsLeavesCleanValuesAlone(t *testing.T) {
	fields := Fields{
		FieldName:    "Anita Desai",
		FieldAddress: "12 MG Road, Pune",
	}

	refineFields(fields)

	assert.Equal(t, "Anita Desai", fields[FieldName])
	assert.Equal(t, "12 MG Road, Pune", fields[FieldAddress])
}

func TestRefineFieldsDoesNotRescanMovedValues(t *testing.T) {
	// "Email x@y.com" lands in phone via the bleed split; the pass works
	// from a snapshot, so the moved value is not split again.
	fields := Fields{FieldName: "Ravi Phone Email x@y.com"}

	refineFields(fields)

	assert.Equal(t, "Ravi", fields[FieldName])
	assert.Equal(t, "Email x@y.com", fields[FieldPhone])
	assert.NotContains(t, fields, FieldEmail)
}

func TestBleedTarget(t *testing.T) {
	target, ok := bleedTarget(FieldName, "Phone")
	assert.True(t, ok)
	assert.Equal(t, FieldPhone, target)

	// The token's own field is never a target.
	_, ok = bleedTarget(FieldPhone, "Phone")
	assert.False(t, ok)

	_, ok = bleedTarget(FieldName, "Pune")
	assert.False(t, ok)
}

func TestRefineFieldsMovesTrailingAge(t *testing.T) {
	fields := Fields{FieldName: "Anita Desai 34"}

	refineFields(fields)

	assert.Equal(t, "Anita Desai", fields[FieldName])
	assert.Equal(t, "34", fields[FieldAge])
}

func TestRefineFieldsKeepsExistingAge(t *testing.T) {
	fields := Fields{FieldName: "Anita Desai 34", FieldAge: "29"}

	refineFields(fields)

	assert.Equal(t, "Anita Desai", fields[FieldName])
	assert.Equal(t, "29", fields[FieldAge])
}

func TestFallbackPhoneRun(t *testing.T) {
	assert.Equal(t, "98765 43210", fallbackPhoneRun("Reach me on 98765 43210 anytime"))
	assert.Equal(t, "", fallbackPhoneRun("only 12345 here"))
}

func TestFallbackAge(t *testing.T) {
	assert.Equal(t, "45", fallbackAge("has lived 45 Years in Pune", nil))
	assert.Equal(t, "34", fallbackAge("no label anywhere", []string{"some line", "34"}))
	assert.Equal(t, "", fallbackAge("no label anywhere", []string{"12"}))
}

func TestFallbackAddress(t *testing.T) {
	assert.Equal(t, "Flat 12, Shanti Nagar", fallbackAddress([]string{"Flat 12, Shanti Nagar"}))
	assert.Equal(t, "42 Krishna Bhavan West", fallbackAddress([]string{"42 Krishna Bhavan West"}))
	assert.Equal(t, "", fallbackAddress([]string{"15/03/1990", "9876543210 9876"}))
}

func TestFallbackGenderSearchOrder(t *testing.T) {
	assert.Equal(t, "Male", fallbackGender("Male Female"))
	assert.Equal(t, "Female", fallbackGender("Female candidates only"))
	assert.Equal(t, "", fallbackGender("nothing relevant"))
}

func TestFallbackName(t *testing.T) {
	name := fallbackName([]string{"IDENTITY CARD", "Ravi Kumar", "Age: 30"})
	assert.Equal(t, "Ravi Kumar", name)
}

func TestFallbackNameStripsLabel(t *testing.T) {
	assert.Equal(t, "Ravi Kumar", fallbackName([]string{"Name: Ravi Kumar"}))
}

func TestRepairEmailDomain(t *testing.T) {
	assert.Equal(t, "john@gmail.com", repairEmailDomain("john@gmai1.com"))
	assert.Equal(t, "john@yahoo.com", repairEmailDomain("john@yaho.com"))
	assert.Equal(t, "john@x.com", repairEmailDomain("john@x.com"))
}
