package extract

import "strings"

// noiseWords are label fragments OCR splits onto their own line ("ID" under
// "Number", a lone "#"); they are never real values.
var noiseWords = map[string]bool{
	"id": true, "no": true, "number": true, "num": true, "#": true,
	"code": true, "address": true, "value": true, "val": true,
}

// lineCursor walks the segmented lines with one-line look-ahead.
type lineCursor struct {
	lines []string
	pos   int
}

func (c *lineCursor) next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

func (c *lineCursor) peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

func (c *lineCursor) consume() {
	c.pos++
}

// lineStart returns the first three whitespace tokens of the line, the
// fragment scored against the label dictionary. Three tokens cover the
// longest synonyms ("Date of Birth") without dragging the value in.
func lineStart(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	return strings.Join(tokens, " ")
}

// candidateValue extracts the value portion of a label line: the text after
// the first colon, or the line minus its leading token when the colon was
// lost in recognition.
func candidateValue(line string) string {
	if _, after, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(after)
	}
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return ""
	}
	return strings.Join(tokens[1:], " ")
}

// validValue rejects empty values, label noise words and truncated emails.
// The label is otherwise trusted: a weird-looking phone value still gets
// stored because the cleaners repair it later.
func validValue(field FieldKey, value string) bool {
	if value == "" {
		return false
	}
	if noiseWords[strings.ToLower(strings.TrimSpace(value))] {
		return false
	}
	if field == FieldEmail && len(value) < 5 {
		return false
	}
	return true
}

// parseLines is the primary label-driven pass. It tracks the field whose
// label appeared most recently and assigns line values to it, looking one
// line ahead when a label arrives with no value of its own.
func parseLines(lines []string, fields Fields) {
	cursor := &lineCursor{lines: lines}
	var current FieldKey

	for {
		line, ok := cursor.next()
		if !ok {
			return
		}

		match, found := classifyLabel(lineStart(line))
		if found {
			current = match
			value := normalizeDigits(candidateValue(line))

			if validValue(current, value) {
				// Longer beats shorter: a second sighting of the same label
				// with more content replaces the first.
				if existing, seen := fields[current]; !seen || len(value) > len(existing) {
					fields[current] = value
				}
				continue
			}

			nextLine, ok := cursor.peek()
			if !ok {
				continue
			}
			if _, nextIsLabel := classifyLabel(lineStart(nextLine)); nextIsLabel {
				// Label seen, value missing. Record the empty sentinel so
				// the field is not mistaken for never-seen later.
				if _, seen := fields[current]; !seen {
					fields[current] = ""
				}
			} else {
				// The value slid onto its own line below the label.
				if !fields.has(current) {
					fields[current] = nextLine
				}
				cursor.consume()
			}
			continue
		}

		if current == "" {
			continue
		}

		// Continuation line. Only addresses span multiple lines; trailing
		// country/postal footers are dropped.
		if current == FieldAddress && !strings.Contains(line, "Country") && !strings.Contains(line, "Post") {
			if fields.has(FieldAddress) {
				fields[FieldAddress] += ", " + line
			} else {
				fields[FieldAddress] = line
			}
		}
	}
}
