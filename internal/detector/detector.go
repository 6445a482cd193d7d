package detector

import (
	"strings"
	"unicode"

	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/domain"
)

// confidenceFloor is the minimum keyword-match count required before a
// detected stream is trusted. Below the floor, or on a tie, detection
// reports no result and the agent asks the student explicitly. A wrong
// stream gates every downstream recommendation, so guessing is never
// acceptable here.
const confidenceFloor = 2

// DetectLanguage identifies the language of a short free-text utterance.
// Marathi is written in Devanagari, so the share of Devanagari letters is a
// reliable signal even on short input. Ambiguous or empty text fails closed
// to English.
func DetectLanguage(text string) domain.Language {
	var letters, devanagari int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Devanagari, r) {
			devanagari++
		}
	}
	if letters == 0 {
		return domain.LangEnglish
	}
	if devanagari*10 >= letters*3 { // >= 30% Devanagari letters
		return domain.LangMarathi
	}
	return domain.LangEnglish
}

// DetectStream scores each stream by how many of its keywords occur in the
// concatenated answer text and returns the strictly highest scorer, provided
// its score reaches the confidence floor. Ties and sub-floor scores return
// ok=false.
func DetectStream(favouriteSubjects, weakSubjects, interests string) (domain.Stream, bool) {
	text := strings.ToLower(favouriteSubjects + " " + weakSubjects + " " + interests)

	scores := map[domain.Stream]int{}
	for stream, byLang := range streamKeywords {
		for _, keywords := range byLang {
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					scores[stream]++
				}
			}
		}
	}

	var best domain.Stream
	bestScore := 0
	tied := false
	for _, stream := range domain.AllStreams {
		switch s := scores[stream]; {
		case s > bestScore:
			best, bestScore, tied = stream, s, false
		case s == bestScore && s > 0:
			tied = true
		}
	}

	if bestScore < confidenceFloor || tied {
		return "", false
	}
	return best, true
}

// ValidateStreamAlignment reports whether a career may be recommended to a
// student in the given stream. It is the single authoritative gate against
// cross-stream leakage: the career must appear in the stream's own career
// list and must not match any of the stream's forbidden patterns.
func ValidateStreamAlignment(careerName string, stream domain.Stream, d *dataset.Dataset) bool {
	info, ok := d.Streams[stream]
	if !ok {
		return false
	}

	lower := strings.ToLower(careerName)
	for _, pattern := range forbiddenPatterns[stream] {
		if strings.Contains(lower, pattern) {
			return false
		}
	}

	for _, c := range info.Careers {
		owned := strings.ToLower(c.Name)
		if owned == lower || strings.Contains(owned, lower) || strings.Contains(lower, owned) {
			return true
		}
	}
	return false
}
