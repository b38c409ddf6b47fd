// Package extract turns noisy OCR text from scanned personal-record forms
// into a structured field record. The text is unreliable: characters are
// misread, Latin and Devanagari digits mix, labeled fields fuse onto one
// line and values drift away from their labels. The pipeline is a sequence
// of best-effort passes: segment fused lines, parse label-driven values,
// reconcile field bleed, clean per field type, then pattern-search the raw
// text for anything still missing.
package extract

// ExtractFields runs the full extraction pipeline over raw OCR output and
// returns the recovered fields. Only fields with non-empty values appear in
// the result; the pipeline has no failure mode and yields an empty record
// for unusable input. Each call is independent, so concurrent extractions
// need no coordination.
func ExtractFields(text string) Fields {
	fields := make(Fields)

	parseLines(segmentLines(text), fields)
	refineFields(fields)
	cleanFields(fields)
	fallbackFill(text, rawLines(text), fields)

	// Empty sentinels were only meaningful between passes.
	for key, value := range fields {
		if value == "" {
			delete(fields, key)
		}
	}
	return fields
}
