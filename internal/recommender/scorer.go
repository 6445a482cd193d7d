package recommender

import (
	"strings"

	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/domain"
)

// ScoringWeights holds the additive weights for career scoring. The relative
// order matters more than the literal values: an interest match outweighs an
// aptitude match, which outweighs a marks bracket.
type ScoringWeights struct {
	InterestMatch float64
	AptitudeMatch float64
	MarksStrong   float64
	MarksMiddle   float64
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		InterestMatch: 2.0,
		AptitudeMatch: 1.5,
		MarksStrong:   1.0,
		MarksMiddle:   0.5,
	}
}

// Reason codes attached to a scored career for observability.
const (
	ReasonInterestMatch = "INTEREST_MATCH"
	ReasonAptitudeMatch = "APTITUDE_MATCH"
	ReasonMarksStrong   = "MARKS_STRONG"
	ReasonMarksMiddle   = "MARKS_MIDDLE"
)

// ScoringInput carries everything needed to score one candidate career.
type ScoringInput struct {
	Career  dataset.Career
	Stream  domain.Stream
	Profile *domain.StudentProfile
	Weights ScoringWeights
}

// ScoredCareer is a candidate with its accumulated score and reasons.
type ScoredCareer struct {
	Career  dataset.Career
	Score   float64
	Reasons []string
}

// interestAffinities maps interest keywords in the student's own words to
// career-name fragments they point at.
var interestAffinities = []struct {
	interests []string
	careers   []string
}{
	{
		interests: []string{"tech", "technology", "innovation", "coding", "robot", "computer"},
		careers:   []string{"engineering", "data"},
	},
	{
		interests: []string{"medical", "health", "doctor"},
		careers:   []string{"medical", "pharmacy", "biotechnology"},
	},
	{
		interests: []string{"business", "finance", "money"},
		careers:   []string{"business", "finance", "accountancy"},
	},
	{
		interests: []string{"creative", "writing", "communication"},
		careers:   []string{"journalism", "psychology", "design"},
	},
}

// aptitudeAffinities maps a stream's aptitude question to the career-name
// fragments a high-aptitude answer boosts.
var aptitudeAffinities = map[domain.Stream]struct {
	questionID string
	careers    []string
}{
	domain.StreamPCM:        {questionID: "math_aptitude", careers: []string{"engineering", "data"}},
	domain.StreamPCB:        {questionID: "biology_interest", careers: []string{"medical", "biotechnology"}},
	domain.StreamCommerce:   {questionID: "accounting_aptitude", careers: []string{"accountancy", "accounting"}},
	domain.StreamArts:       {questionID: "communication", careers: []string{"journalism", "law"}},
	domain.StreamVocational: {questionID: "hands_on", careers: []string{"iti", "trade", "technician"}},
}

// positiveAnswers are the phrasings accepted as a high-aptitude answer.
var positiveAnswers = []string{"high", "very high", "comfortable", "strong", "yes"}

// ScoreCareer computes the deterministic additive score for one career.
// The scoring is intentionally rule-based so the stream-alignment guarantee
// stays auditable; no generated text ever influences it.
func ScoreCareer(input ScoringInput) ScoredCareer {
	result := ScoredCareer{Career: input.Career}

	factors := []func(ScoringInput) (float64, string){
		scoreInterestMatch,
		scoreAptitudeMatch,
		scoreMarksBracket,
	}
	for _, f := range factors {
		delta, reason := f(input)
		result.Score += delta
		if reason != "" {
			result.Reasons = append(result.Reasons, reason)
		}
	}
	return result
}

func scoreInterestMatch(input ScoringInput) (float64, string) {
	interests := strings.ToLower(input.Profile.Interests)
	careerName := strings.ToLower(input.Career.Name)

	for _, aff := range interestAffinities {
		if !containsAny(interests, aff.interests) {
			continue
		}
		if containsAny(careerName, aff.careers) {
			return input.Weights.InterestMatch, ReasonInterestMatch
		}
	}
	return 0, ""
}

func scoreAptitudeMatch(input ScoringInput) (float64, string) {
	aff, ok := aptitudeAffinities[input.Stream]
	if !ok {
		return 0, ""
	}
	answer := strings.ToLower(input.Profile.StreamAptitude[aff.questionID])
	if answer == "" || !containsAny(answer, positiveAnswers) {
		return 0, ""
	}
	if containsAny(strings.ToLower(input.Career.Name), aff.careers) {
		return input.Weights.AptitudeMatch, ReasonAptitudeMatch
	}
	return 0, ""
}

// scoreMarksBracket rewards stronger marks brackets. The bracket is read
// from the highest number mentioned in the free-text marks answer, so
// "85-90%", "90+" and "around 88" all land in the strong bracket.
func scoreMarksBracket(input ScoringInput) (float64, string) {
	top := highestNumber(input.Profile.MarksRange)
	switch {
	case top >= 80:
		return input.Weights.MarksStrong, ReasonMarksStrong
	case top >= 70:
		return input.Weights.MarksMiddle, ReasonMarksMiddle
	}
	return 0, ""
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// highestNumber extracts the largest integer mentioned in text, capped at
// 100 since marks are percentages. Returns 0 when no number is present.
func highestNumber(text string) int {
	best, cur := 0, 0
	inNum := false
	for _, r := range text {
		if r >= '0' && r <= '9' {
			cur = cur*10 + int(r-'0')
			inNum = true
			continue
		}
		if inNum && cur <= 100 && cur > best {
			best = cur
		}
		cur, inNum = 0, false
	}
	if inNum && cur <= 100 && cur > best {
		best = cur
	}
	return best
}
