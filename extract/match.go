package extract

import fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

// Acceptance thresholds, tuned against scanned handwritten forms. They
// decide which lines count as labels and when a value has bled into a
// neighboring field, so they are fixed here rather than passed per call.
const (
	labelScoreMin         = 70 // line-start label classification
	bleedScoreMin         = 85 // cross-field bleed, gender and mail-domain fixes
	fallbackLabelScoreMin = 80 // name fallback: reject lines resembling other labels
)

// scorer is one of the fuzzywuzzy similarity modes, 0-100.
type scorer func(string, string) int

func ratio(a, b string) int        { return fuzzy.Ratio(a, b) }
func partialRatio(a, b string) int { return fuzzy.PartialRatio(a, b) }

// tokenSetRatio compares token sets with cleansing on (lowercase, strip
// punctuation) but ASCII folding off so Devanagari labels survive. The
// option order is (asciiOnly, cleanse); both must be given, or the scorer
// compares raw strings and "Name:" never matches "Name".
func tokenSetRatio(a, b string) int { return fuzzy.TokenSetRatio(a, b, false, true) }

// bestSynonymScore returns the highest score of query against the synonym
// list under the given scorer.
func bestSynonymScore(query string, synonyms []string, score scorer) int {
	best := 0
	for _, syn := range synonyms {
		if s := score(query, syn); s > best {
			best = s
		}
	}
	return best
}

// classifyLabel scores the fragment against every field's synonyms with
// token_set_ratio and returns the best field above the label threshold.
// Ties resolve to the earlier field in dictionary order.
func classifyLabel(fragment string) (FieldKey, bool) {
	var bestField FieldKey
	bestScore := 0
	for _, entry := range labelDictionary {
		s := bestSynonymScore(fragment, entry.synonyms, tokenSetRatio)
		if s > labelScoreMin && s > bestScore {
			bestScore = s
			bestField = entry.key
		}
	}
	return bestField, bestScore > 0
}
