package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDigits(t *testing.T) {
	assert.Equal(t, "0123456789", normalizeDigits("०१२३४५६७८९"))
	assert.Equal(t, "Age 45", normalizeDigits("Age ४५"))
	assert.Equal(t, "", normalizeDigits(""))
}

func TestNormalizeDigitsIdempotent(t *testing.T) {
	inputs := []string{"०१२ abc ४५", "no digits at all", "12345", ""}
	for _, in := range inputs {
		once := normalizeDigits(in)
		assert.Equal(t, once, normalizeDigits(once))
	}
}

func TestFixDigitTypos(t *testing.T) {
	assert.Equal(t, "90123", fixDigitTypos("qOlZ3"))
	assert.Equal(t, "9876543210", fixDigitTypos("g8765432IO"))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Ravi Kumar", cleanName("Ravi @Kumar#!"))
	// Devanagari vowel signs are combining marks, outside the letter class.
	assert.Equal(t, "रव कमर", cleanName("रवि कुमार"))
	assert.Equal(t, "J. R. Rao", cleanName("J. R. Rao"))
}

func TestCleanAge(t *testing.T) {
	assert.Equal(t, "45", cleanAge("45 yrs"))
	assert.Equal(t, "45", cleanAge("४५"))
}

func TestCleanGender(t *testing.T) {
	assert.Equal(t, "Male", cleanGender("M"))
	assert.Equal(t, "Male", cleanGender("mALE"))
	assert.Equal(t, "Female", cleanGender("F"))
	assert.Equal(t, "Female", cleanGender("fem."))
	assert.Equal(t, "unknown", cleanGender(" unknown "))
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "98765-43210", cleanPhone("98765-43210"))
	assert.Equal(t, "+91 98765 43210", cleanPhone("+91 98765 43210"))
	assert.Equal(t, "9876543210", cleanPhone("g87654321O"))
}

func TestCleanAddress(t *testing.T) {
	assert.Equal(t, "12 MG Road, Pune", cleanAddress(" .12 MG Road, Pune-, "))
	assert.Equal(t, "12 Indira Nagar", cleanAddress("12 |ndira Nagar"))
	assert.Equal(t, "12 MG Road", cleanAddress("१२ MG Road"))
}

func TestCleanEmailSpacingRepairs(t *testing.T) {
	assert.Equal(t, "user@example.com", cleanEmail("user@ example.com"))
	assert.Equal(t, "user@example.com", cleanEmail("user@example .com"))
	assert.Equal(t, "user@example.com", cleanEmail("user@example com"))
}

func TestCleanEmailMisreadCharacters(t *testing.T) {
	assert.Equal(t, "user@example.com", cleanEmail("user@exampl&,com"))
	assert.Equal(t, "user@example.com", cleanEmail("user@example$com"))
}

func TestCleanEmailRestoresAt(t *testing.T) {
	assert.Equal(t, "john@example.com", cleanEmail("johnexample.com"))
	assert.Equal(t, "john@gmail.com", cleanEmail("johngmail.com"))
}

func TestCleanEmailWithDomainRepair(t *testing.T) {
	// The full path a broken handwritten address takes: spacing repairs in
	// the cleaner, then the known-typo domain fix.
	cleaned := cleanEmail("john smith@ gmai1 .com")
	assert.Equal(t, "johnsmith@gmai1.com", cleaned)
	assert.Equal(t, "johnsmith@gmail.com", repairEmailDomain(cleaned))
}
