package extract

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rawLines splits OCR output into trimmed, non-empty lines in reading
// order. The fallback pass works on these directly.
func rawLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// segmentLines produces the line sequence fed to the primary parser: raw
// lines with fused multi-label lines split apart.
func segmentLines(text string) []string {
	var out []string
	for _, line := range rawLines(text) {
		out = append(out, splitFusedLine(line)...)
	}
	return out
}

// splitFusedLine breaks a line containing two or more embedded labels into
// one segment per label. OCR merges "Name: A    Phone: B" into a single
// line when the pairs sit side by side on the form; without the split the
// second pair would be swallowed into the first field's value.
func splitFusedLine(line string) []string {
	offsets := labelOffsets(line)
	if len(offsets) < 2 {
		return []string{line}
	}

	var segments []string
	last := 0
	for _, idx := range offsets {
		if idx > last {
			if seg := strings.TrimSpace(line[last:idx]); seg != "" {
				segments = append(segments, seg)
			}
			last = idx
		}
	}
	if last < len(line) {
		if seg := strings.TrimSpace(line[last:]); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// labelOffsets returns the sorted, deduplicated start offsets of every
// whole-word label synonym occurrence in the line.
func labelOffsets(line string) []int {
	lower := strings.ToLower(line)
	seen := make(map[int]bool)
	var offsets []int
	for _, entry := range labelDictionary {
		for _, syn := range entry.synonyms {
			for _, idx := range wholeWordIndexes(lower, strings.ToLower(syn)) {
				if !seen[idx] {
					seen[idx] = true
					offsets = append(offsets, idx)
				}
			}
		}
	}
	sort.Ints(offsets)
	return offsets
}

// wholeWordIndexes finds every occurrence of word in s that is not embedded
// in a longer word. The boundary check is rune-based rather than \b so that
// Devanagari labels match too.
func wholeWordIndexes(s, word string) []int {
	var out []int
	for from := 0; ; {
		i := strings.Index(s[from:], word)
		if i < 0 {
			break
		}
		i += from
		before, _ := utf8.DecodeLastRuneInString(s[:i])
		after, _ := utf8.DecodeRuneInString(s[i+len(word):])
		if !isWordRune(before) && !isWordRune(after) {
			out = append(out, i)
		}
		from = i + len(word)
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
