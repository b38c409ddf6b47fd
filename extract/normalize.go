package extract

import "strings"

// normalizeDigits maps Devanagari digits (०-९) to their ASCII equivalents.
// Handwritten Hindi forms mix scripts freely, so every numeric value goes
// through this before validation. Idempotent.
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '०' && r <= '९' {
			return '0' + (r - '०')
		}
		return r
	}, s)
}

// digitTypos lists the Latin characters Tesseract habitually reads in place
// of digits on handwritten forms.
var digitTypos = strings.NewReplacer(
	"O", "0", "o", "0", "D", "0",
	"I", "1", "l", "1", "|", "1",
	"Z", "2", "z", "2",
	"S", "5", "s", "5",
	"G", "6", "b", "6",
	"B", "8",
	"g", "9", "q", "9",
)

// fixDigitTypos repairs letter-for-digit confusions. Only applied to values
// already known to be numeric (phone numbers); letters in mixed fields are
// left alone.
func fixDigitTypos(s string) string {
	return digitTypos.Replace(s)
}
