package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	phoneLabelPattern  = regexp.MustCompile(`(?i)(?:Phone|Mobile|Cell|Tel|Contact)\s*[:\-.]?\s*([+\d()\-\s]{10,})`)
	phoneRunPattern    = regexp.MustCompile(`\b\d[\d\s\-()]{9,}\d\b`)
	ageLabelPattern    = regexp.MustCompile(`(?i)(?:Age|Years)\s*[:\-.]?\s*(\d{1,3})`)
	ageSuffixPattern   = regexp.MustCompile(`(?i)(\d{1,3})\s*(?:Years|Yrs)`)
	twoDigitLine       = regexp.MustCompile(`^\d{2}$`)
	houseNumberPattern = regexp.MustCompile(`^\d+[\s,]+[a-zA-Z]`)
	datePattern        = regexp.MustCompile(`\d{2}[-/]\d{2}[-/]\d{2,4}`)
	maleWordPattern    = regexp.MustCompile(`(?i)\b(?:Male|M)\b`)
	femaleWordPattern  = regexp.MustCompile(`(?i)\b(?:Female|F)\b`)
	letterPattern      = regexp.MustCompile(`[a-zA-Z]`)
)

// addressKeywords mark street and locality vocabulary on Indian and
// western forms.
var addressKeywords = []string{
	"Street", "St.", "Road", "Rd", "Lane", "Ave", "Apartment", "Apt", "Floor",
	"Block", "District", "State", "Pin", "Zip", "Nagar", "Colony", "Sector",
	"Plot", "Flat", "Suite", "Unit",
}

// knownDomainTypos maps canonical mail domains to misreadings seen in OCR
// output. Used to repair the domain of any captured email, however it was
// found.
var knownDomainTypos = []struct {
	canonical string
	typos     []string
}{
	{"gmail.com", []string{"gmai1.com", "gnail.com", "gmal.com", "gmil.com"}},
	{"yahoo.com", []string{"yaho.com", "yhoo.com"}},
	{"hotmail.com", []string{"hotmai1.com", "hotmal.com"}},
	{"outlook.com", []string{"outlok.com"}},
}

// fallbackFill runs the last-resort searches over the original raw text for
// every field the label-driven pass left empty. Populated fields are never
// overwritten here.
func fallbackFill(text string, lines []string, fields Fields) {
	if !fields.has(FieldEmail) {
		if m := emailPattern.FindString(text); m != "" {
			fields[FieldEmail] = m
		}
	}
	if !fields.has(FieldPhone) {
		if m := phoneLabelPattern.FindStringSubmatch(text); len(m) > 1 {
			fields[FieldPhone] = strings.TrimSpace(m[1])
		}
	}
	if !fields.has(FieldAge) {
		if age := fallbackAge(text, lines); age != "" {
			fields[FieldAge] = age
		}
	}
	if !fields.has(FieldAddress) {
		if addr := fallbackAddress(lines); addr != "" {
			fields[FieldAddress] = addr
		}
	}
	if !fields.has(FieldPhone) {
		if phone := fallbackPhoneRun(text); phone != "" {
			fields[FieldPhone] = phone
		}
	}
	if fields.has(FieldEmail) {
		fields[FieldEmail] = repairEmailDomain(fields[FieldEmail])
	}
	if !fields.has(FieldGender) {
		if gender := fallbackGender(text); gender != "" {
			fields[FieldGender] = gender
		}
	}
	if !fields.has(FieldName) {
		if name := fallbackName(lines); name != "" {
			fields[FieldName] = name
		}
	}
}

// fallbackAge finds an age by label, by a "45 Years" suffix, or as a bare
// two-digit line in plausible adult range when the label was missed
// entirely.
func fallbackAge(text string, lines []string) string {
	if m := ageLabelPattern.FindStringSubmatch(text); len(m) > 1 {
		return m[1]
	}
	if m := ageSuffixPattern.FindStringSubmatch(text); len(m) > 1 {
		return m[1]
	}
	for _, line := range lines {
		if !twoDigitLine.MatchString(line) {
			continue
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 18 && n <= 99 {
			return line
		}
	}
	return ""
}

// fallbackAddress collects lines carrying street vocabulary, joining up to
// three; failing that it accepts a house-number-shaped line that is neither
// a date nor a phone number.
func fallbackAddress(lines []string) string {
	var hits []string
	for _, line := range lines {
		if len(line) < 5 {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range addressKeywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				hits = append(hits, line)
				break
			}
		}
	}
	if len(hits) > 0 {
		if len(hits) > 3 {
			hits = hits[:3]
		}
		return strings.Join(hits, ", ")
	}

	for _, line := range lines {
		if len(line) <= 10 || !houseNumberPattern.MatchString(line) {
			continue
		}
		if datePattern.MatchString(line) {
			continue
		}
		if digitCount(line) >= 10 {
			continue
		}
		return line
	}
	return ""
}

// fallbackPhoneRun accepts any standalone digit/separator run carrying at
// least ten actual digits.
func fallbackPhoneRun(text string) string {
	m := phoneRunPattern.FindString(text)
	if m == "" || digitCount(m) < 10 {
		return ""
	}
	return strings.TrimSpace(m)
}

// repairEmailDomain swaps a near-miss domain for its canonical spelling,
// by exact typo table first and edit similarity second.
func repairEmailDomain(email string) string {
	user, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}
	for _, d := range knownDomainTypos {
		for _, typo := range d.typos {
			if domain == typo {
				return user + "@" + d.canonical
			}
		}
		if ratio(domain, d.canonical) > bleedScoreMin {
			return user + "@" + d.canonical
		}
	}
	return email
}

// fallbackGender scans the whole text for a gender word. Male/M is checked
// before Female/F, so a form listing both checkbox options reports Male;
// the result is search-order dependent, not semantic.
func fallbackGender(text string) string {
	if maleWordPattern.MatchString(text) {
		return "Male"
	}
	if femaleWordPattern.MatchString(text) {
		return "Female"
	}
	return ""
}

// fallbackName takes the first line that does not resemble another field's
// label, is not form boilerplate, and contains at least one letter. A
// leading name label is stripped before assignment.
func fallbackName(lines []string) string {
	for _, line := range lines {
		if looksLikeOtherLabel(line) {
			continue
		}
		upper := strings.ToUpper(line)
		if strings.Contains(upper, "CARD") || strings.Contains(upper, "FORM") {
			continue
		}
		if !letterPattern.MatchString(line) {
			continue
		}
		return stripNameLabel(line)
	}
	return ""
}

// looksLikeOtherLabel reports whether the line resembles a non-name label
// anywhere in its text.
func looksLikeOtherLabel(line string) bool {
	lower := strings.ToLower(line)
	for _, entry := range labelDictionary {
		if entry.key == FieldName {
			continue
		}
		for _, syn := range entry.synonyms {
			if partialRatio(strings.ToLower(syn), lower) > fallbackLabelScoreMin {
				return true
			}
		}
	}
	return false
}

func stripNameLabel(line string) string {
	lower := strings.ToLower(line)
	for _, syn := range synonymsFor(FieldName) {
		if !strings.HasPrefix(lower, strings.ToLower(syn)) {
			continue
		}
		re := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(syn) + `[:\-.]?\s*`)
		return strings.TrimSpace(re.ReplaceAllString(line, ""))
	}
	return line
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
