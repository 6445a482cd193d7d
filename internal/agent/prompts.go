package agent

import (
	"fmt"
	"strings"

	"github.com/margdarshak/disha/internal/domain"
	"github.com/margdarshak/disha/internal/recommender"
)

// preambleSystemPrompt instructs the LLM to write one short framing sentence.
// The career selection is already final when this runs; the model only adds
// prose and must never name careers outside the provided list.
const preambleSystemPrompt = `You are a warm, encouraging career counselor for 12th-grade students in India.
Write ONE short sentence (maximum 30 words) that personally introduces the career recommendations below.
Rules:
1. Mention only careers from the provided list, never any other career.
2. Do not use markdown, lists, or headings.
3. Answer in the language indicated by the "language" field ("en" = English, "mr" = Marathi).
4. Do not repeat the career details; only write a friendly framing sentence.`

// buildPreamblePrompt assembles the user prompt for the optional framing
// sentence from the confirmed profile and the already-selected careers.
func buildPreamblePrompt(profile *domain.StudentProfile, stream domain.Stream, careers []recommender.ScoredCareer) string {
	names := make([]string, 0, len(careers))
	for _, c := range careers {
		names = append(names, c.Career.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "language: %s\n", profile.Language)
	fmt.Fprintf(&b, "stream: %s\n", stream)
	fmt.Fprintf(&b, "interests: %s\n", profile.Interests)
	fmt.Fprintf(&b, "selected careers: %s\n", strings.Join(names, ", "))
	return b.String()
}
