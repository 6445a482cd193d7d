package domain

import "strings"

// Stream is one of the five fixed higher-secondary academic tracks.
type Stream string

const (
	StreamPCM        Stream = "PCM"
	StreamPCB        Stream = "PCB"
	StreamCommerce   Stream = "Commerce"
	StreamArts       Stream = "Arts"
	StreamVocational Stream = "Vocational"
)

// AllStreams lists every stream in canonical order.
var AllStreams = []Stream{StreamPCM, StreamPCB, StreamCommerce, StreamArts, StreamVocational}

// ParseStream maps a case-insensitive stream code to its Stream.
func ParseStream(code string) (Stream, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "pcm":
		return StreamPCM, true
	case "pcb":
		return StreamPCB, true
	case "commerce":
		return StreamCommerce, true
	case "arts":
		return StreamArts, true
	case "vocational":
		return StreamVocational, true
	}
	return "", false
}

// Language is the conversation language tag.
type Language string

const (
	LangEnglish Language = "en"
	LangMarathi Language = "mr"
)

// Phase is the conversation state held by the agent. Transitions are linear
// and forward-only except for the correction loop at PhaseStreamConfirmation.
type Phase string

const (
	PhaseWelcome            Phase = "welcome"
	PhaseGeneralQuestions   Phase = "general_questions"
	PhaseStreamConfirmation Phase = "stream_confirmation"
	PhaseStreamQuestions    Phase = "stream_questions"
	PhaseRecommendations    Phase = "recommendations"
	PhaseComplete           Phase = "complete"
)
