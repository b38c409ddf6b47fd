package extract

import (
	"regexp"
	"strings"
)

var (
	nonNameChars  = regexp.MustCompile(`[^\p{L}\p{N}\s.]`)
	nonDigits     = regexp.MustCompile(`\D`)
	nonPhoneChars = regexp.MustCompile(`[^\d+\-()\s]`)
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// cleanFields applies per-field normalization to every captured value.
func cleanFields(fields Fields) {
	if fields.has(FieldName) {
		fields[FieldName] = cleanName(fields[FieldName])
	}
	if fields.has(FieldAge) {
		fields[FieldAge] = cleanAge(fields[FieldAge])
	}
	if fields.has(FieldGender) {
		fields[FieldGender] = cleanGender(fields[FieldGender])
	}
	if fields.has(FieldEmail) {
		fields[FieldEmail] = cleanEmail(fields[FieldEmail])
	}
	if fields.has(FieldPhone) {
		fields[FieldPhone] = cleanPhone(fields[FieldPhone])
	}
	if fields.has(FieldAddress) {
		fields[FieldAddress] = cleanAddress(fields[FieldAddress])
	}
}

// cleanName keeps letters in any script, digits, whitespace and periods.
func cleanName(s string) string {
	return strings.TrimSpace(nonNameChars.ReplaceAllString(s, ""))
}

func cleanAge(s string) string {
	return nonDigits.ReplaceAllString(normalizeDigits(s), "")
}

// cleanGender classifies a noisy gender value. "female"/"fem"/leading "f"
// win before the "male" checks because "female" contains "male".
func cleanGender(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(t, "female") || strings.HasPrefix(t, "f") || strings.Contains(t, "fem") {
		return "Female"
	}
	if strings.Contains(t, "male") || strings.HasPrefix(t, "m") {
		return "Male"
	}
	return strings.TrimSpace(s)
}

func cleanPhone(s string) string {
	s = fixDigitTypos(normalizeDigits(s))
	return strings.TrimSpace(nonPhoneChars.ReplaceAllString(s, ""))
}

// cleanAddress trims boundary punctuation and undoes the pipe-for-I
// confusion common in house numbers ("12 |ndira Nagar").
func cleanAddress(s string) string {
	s = normalizeDigits(s)
	s = strings.Trim(s, " .,-:")
	return strings.ReplaceAll(s, "|", "I")
}

// emailSpaceRepairs collapse the stray spaces OCR inserts around email
// separators. Applied in order before the literal repairs.
var emailSpaceRepairs = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`@\s+`), "@"},  // "user@ example.com"
	{regexp.MustCompile(`\s+\.`), "."}, // "example .com"
	{regexp.MustCompile(`\.\s+`), "."}, // "example. com"
}

// emailLiteralRepairs are ordered literal substitutions for recurring
// misreads: "$" for "s", "&" for "e", commas for dots.
var emailLiteralRepairs = [][2]string{
	{" ", ""},
	{",", "."},
	{"..", "."},
	{"$com", ".com"},
	{"$", "s"},
	{"examp&", "example"},
	{"&", "e"},
}

// knownDomains anchor the missing-@ repair: when no "@" survived OCR, the
// separator is reinserted just before a recognized domain.
var knownDomains = []string{"example.com", "gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

// cleanEmail runs the ordered repair rules and returns the first RFC-like
// address found in the result, or the repaired string when none matches.
func cleanEmail(s string) string {
	for _, r := range emailSpaceRepairs {
		s = r.pattern.ReplaceAllString(s, r.replace)
	}

	// A spaced domain with no dot is a dropped period: "example com".
	if user, domain, ok := strings.Cut(s, "@"); ok && !strings.Contains(domain, "@") {
		if strings.Contains(domain, " ") && !strings.Contains(domain, ".") {
			s = user + "@" + strings.ReplaceAll(domain, " ", ".")
		}
	}

	for _, r := range emailLiteralRepairs {
		s = strings.ReplaceAll(s, r[0], r[1])
	}

	if !strings.Contains(s, "@") {
		s = restoreEmailAt(s)
	}

	if m := emailPattern.FindString(s); m != "" {
		return m
	}
	return s
}

// restoreEmailAt rebuilds a lost "@": first by reading a literal "at", then
// by splicing the separator in front of a known domain. A trailing "e" on
// the user part is absorbed when the domain starts with "e", fixing
// "johne" + "example.com" merges.
func restoreEmailAt(s string) string {
	if strings.Contains(s, "at") {
		return strings.ReplaceAll(s, "at", "@")
	}
	if !strings.Contains(s, ".com") {
		return s
	}
	for _, d := range knownDomains {
		idx := strings.Index(s, d)
		if idx < 0 {
			continue
		}
		if idx > 0 {
			if s[idx-1] == 'e' && d[0] == 'e' {
				s = s[:idx-1] + "@" + d
			} else {
				s = s[:idx] + "@" + d
			}
		}
		break
	}
	return s
}
