package extract

import (
	"regexp"
	"strings"
)

var (
	trailingDigits  = regexp.MustCompile(`\d{1,3}$`)
	addressLabelCut = regexp.MustCompile(`(?i)\b(phone|email|gender|id|age|name)[:\s]`)
)

// refineFields reconciles field bleed: a value captured under one label
// that actually contains another field's label and its value, which happens
// when OCR glues a whole form row together. Each value is split at the
// first token resembling a foreign label; everything after the token moves
// to that field if it is still empty.
func refineFields(fields Fields) {
	// Snapshot first: a value moved into another field during this pass is
	// not itself re-scanned.
	snapshot := make(map[FieldKey]string, len(fields))
	for key, value := range fields {
		snapshot[key] = value
	}

	for _, entry := range labelDictionary {
		key := entry.key
		value := snapshot[key]
		if len(value) < 5 {
			continue
		}

		words := strings.Fields(value)
		for i, word := range words {
			if i == 0 && len(words) == 1 {
				continue
			}
			token := strings.Trim(word, ":,.-")
			if len(token) < 3 {
				continue
			}
			target, ok := bleedTarget(key, token)
			if !ok {
				continue
			}
			fields[key] = strings.TrimSpace(strings.Join(words[:i], " "))
			if !fields.has(target) {
				fields[target] = strings.TrimSpace(strings.Join(words[i+1:], " "))
			}
			break
		}
	}

	// Trailing digits on a name are almost always a fused age column.
	if name := strings.TrimSpace(fields[FieldName]); name != "" {
		if loc := trailingDigits.FindStringIndex(name); loc != nil {
			if !fields.has(FieldAge) {
				fields[FieldAge] = name[loc[0]:]
			}
			fields[FieldName] = strings.TrimSpace(name[:loc[0]])
		}
	}

	// An address that ran into the next printed label gets cut at the label.
	if addr := fields[FieldAddress]; addr != "" {
		if loc := addressLabelCut.FindStringIndex(addr); loc != nil {
			fields[FieldAddress] = strings.TrimSpace(addr[:loc[0]])
		}
	}
}

// bleedTarget reports which other field's label the token matches, if any.
// When more than one field clears the threshold, the last in dictionary
// order wins.
func bleedTarget(current FieldKey, token string) (FieldKey, bool) {
	var target FieldKey
	var found bool
	for _, entry := range labelDictionary {
		if entry.key == current {
			continue
		}
		if bestSynonymScore(token, entry.synonyms, ratio) > bleedScoreMin {
			target = entry.key
			found = true
		}
	}
	return target, found
}
