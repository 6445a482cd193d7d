package agent

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/detector"
	"github.com/margdarshak/disha/internal/domain"
	"github.com/margdarshak/disha/internal/llm"
	"github.com/margdarshak/disha/internal/logger"
	"github.com/margdarshak/disha/internal/recommender"
)

// Agent is the finite-state orchestrator for one conversation. It holds the
// student profile, the current phase, and the current question pointer, and
// consumes exactly one utterance per ProcessInput call.
//
// Invariants enforced on every turn: at most one unanswered question per
// reply; no field is ever defaulted or fabricated; the phase only moves
// forward, except for the correction loop at stream confirmation.
//
// An Agent is not safe for concurrent use; the transport serializes calls
// per session.
type Agent struct {
	data *dataset.Dataset
	rec  *recommender.Recommender
	gen  llm.Generator // nil disables the optional preamble
	log  *logger.Logger

	profile        *domain.StudentProfile
	phase          domain.Phase
	questionIndex  int
	language       domain.Language
	languagePinned bool

	detectedStream  *domain.Stream
	streamQuestions []dataset.Question

	// lastPrompt is re-emitted verbatim when the student sends an empty
	// utterance, so the pending question never advances on invalid input.
	lastPrompt string
}

// Option configures an Agent at construction.
type Option func(*Agent)

// WithLanguage pins the conversation language, skipping detection.
func WithLanguage(lang domain.Language) Option {
	return func(a *Agent) {
		a.language = lang
		a.languagePinned = true
		a.profile.SetLanguage(lang)
	}
}

// New creates an Agent over a loaded dataset. gen may be nil; the agent then
// delivers rule-formatted recommendations without the personalized preamble.
func New(data *dataset.Dataset, gen llm.Generator, log *logger.Logger, opts ...Option) *Agent {
	if log == nil {
		log = logger.NewNop()
	}
	a := &Agent{
		data:     data,
		rec:      recommender.New(data),
		gen:      gen,
		log:      log,
		profile:  domain.NewStudentProfile(),
		phase:    domain.PhaseWelcome,
		language: domain.LangEnglish,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Phase returns the current conversation phase.
func (a *Agent) Phase() domain.Phase { return a.phase }

// Language returns the active conversation language.
func (a *Agent) Language() domain.Language { return a.language }

// Profile returns the profile accumulated so far.
func (a *Agent) Profile() *domain.StudentProfile { return a.profile }

// Reset returns the agent to the Welcome phase with a fresh profile.
// Calling it repeatedly is idempotent.
func (a *Agent) Reset() {
	a.profile.Reset()
	a.phase = domain.PhaseWelcome
	a.questionIndex = 0
	a.detectedStream = nil
	a.streamQuestions = nil
	a.lastPrompt = ""
	if a.languagePinned {
		a.profile.SetLanguage(a.language)
	} else {
		a.language = domain.LangEnglish
	}
}

// ProcessInput consumes one utterance and returns one reply plus a flag
// indicating whether the conversation has completed.
func (a *Agent) ProcessInput(ctx context.Context, utterance string) (string, bool) {
	input := strings.TrimSpace(utterance)

	if input == "" {
		if a.phase == domain.PhaseComplete {
			return conversationCompleteMessage(a.language), true
		}
		// Re-prompt for the same question without advancing.
		if a.lastPrompt != "" {
			return a.lastPrompt, false
		}
		return invalidAnswerMessage(a.language), false
	}

	// Language is detected once, on the first utterance, unless pinned.
	if a.phase == domain.PhaseWelcome && !a.languagePinned {
		a.language = detector.DetectLanguage(input)
		a.profile.SetLanguage(a.language)
		a.log.Info("language detected", "language", a.language)
	}

	switch a.phase {
	case domain.PhaseWelcome:
		return a.handleWelcome(), false
	case domain.PhaseGeneralQuestions:
		return a.handleGeneralQuestion(input)
	case domain.PhaseStreamConfirmation:
		return a.handleStreamConfirmation(ctx, input)
	case domain.PhaseStreamQuestions:
		return a.handleStreamQuestion(ctx, input)
	case domain.PhaseComplete:
		return conversationCompleteMessage(a.language), true
	}

	// Unreachable with a well-formed phase; recover with a re-prompt.
	return invalidAnswerMessage(a.language), false
}

// handleWelcome acknowledges the first utterance and emits the first general
// question.
func (a *Agent) handleWelcome() string {
	a.phase = domain.PhaseGeneralQuestions
	a.questionIndex = 0

	if len(a.data.Questions.General) == 0 {
		// Dataset defect: nothing to ask. Greet and wait; the defect was
		// reported at load time.
		a.log.Warn("no general questions in dataset")
		return a.emit(welcomeMessage(a.language))
	}
	q := a.data.Questions.General[0]
	return a.emit(welcomeMessage(a.language) + "\n\n" + q.Text(a.language))
}

// handleGeneralQuestion stores the answer for the pending general question
// and emits the next one, or moves to stream detection when the pool is done.
func (a *Agent) handleGeneralQuestion(input string) (string, bool) {
	general := a.data.Questions.General
	if a.questionIndex < len(general) {
		a.profile.Update(general[a.questionIndex].ID, input)
		a.questionIndex++
	}

	if a.questionIndex < len(general) {
		return a.emit(general[a.questionIndex].Text(a.language)), false
	}

	// All general questions answered; detect the stream.
	a.phase = domain.PhaseStreamConfirmation
	stream, ok := detector.DetectStream(
		a.profile.FavouriteSubjects,
		a.profile.WeakSubjects,
		a.profile.Interests,
	)
	if !ok {
		// No confident detection: ask explicitly instead of guessing.
		a.log.Info("stream detection inconclusive, asking explicitly")
		return a.emit(askStreamMessage(a.language)), false
	}

	a.detectedStream = &stream
	a.log.Info("stream detected", "stream", stream)
	return a.emit(confirmStreamMessage(a.language, a.data.StreamName(stream))), false
}

// handleStreamConfirmation resolves the student's confirmation, denial, or
// explicit stream choice. The phase loops here until a valid stream is set.
func (a *Agent) handleStreamConfirmation(ctx context.Context, input string) (string, bool) {
	lower := strings.ToLower(input)

	switch {
	case matchesAny(lower, affirmWords):
		if a.detectedStream == nil {
			return a.emit(askStreamMessage(a.language)), false
		}
		a.profile.SetStream(*a.detectedStream)
	case matchesAny(lower, denyWords):
		a.detectedStream = nil
		return a.emit(askStreamMessage(a.language)), false
	default:
		stream, ok := matchStreamName(input)
		if !ok {
			return a.emit(invalidStreamMessage(a.language)), false
		}
		a.profile.SetStream(stream)
	}

	confirmed := *a.profile.Stream
	a.log.Info("stream confirmed", "stream", confirmed)

	a.phase = domain.PhaseStreamQuestions
	a.streamQuestions = a.data.StreamQuestions(confirmed)
	a.questionIndex = 0

	if len(a.streamQuestions) == 0 {
		// Dataset defect: no stream-specific questions. Recommend directly.
		a.log.Warn("no stream questions in dataset", "stream", confirmed)
		return a.deliverRecommendations(ctx)
	}
	return a.emit(a.streamQuestions[0].Text(a.language)), false
}

// handleStreamQuestion stores the answer for the pending stream-specific
// question, then emits the next one or delivers the recommendations.
func (a *Agent) handleStreamQuestion(ctx context.Context, input string) (string, bool) {
	if a.questionIndex < len(a.streamQuestions) {
		a.profile.SetAptitude(a.streamQuestions[a.questionIndex].ID, input)
		a.questionIndex++
	}

	if a.questionIndex < len(a.streamQuestions) {
		return a.emit(a.streamQuestions[a.questionIndex].Text(a.language)), false
	}
	return a.deliverRecommendations(ctx)
}

// deliverRecommendations runs the recommender, formats the fixed-structure
// blocks, and optionally prepends a generated framing sentence. Generation
// failures degrade to the rule-formatted text; delivery never depends on the
// provider being available.
func (a *Agent) deliverRecommendations(ctx context.Context) (string, bool) {
	a.phase = domain.PhaseRecommendations
	stream := *a.profile.Stream

	careers := a.rec.FilterCareers(stream, a.profile)
	a.phase = domain.PhaseComplete
	a.lastPrompt = ""

	if len(careers) == 0 {
		a.log.Warn("no careers available", "stream", stream)
		return noCareersMessage(a.language), true
	}
	if len(careers) < 3 {
		a.log.Warn("fewer than three careers available", "stream", stream, "count", len(careers))
	}

	var b strings.Builder
	if preamble := a.generatePreamble(ctx, stream, careers); preamble != "" {
		b.WriteString(preamble)
		b.WriteString("\n\n")
	}
	b.WriteString(recommendationsHeader(a.language))
	b.WriteString("\n\n")
	for i, c := range careers {
		b.WriteString(a.rec.FormatRecommendation(c.Career, stream, a.language, i+1))
		b.WriteString("\n---\n\n")
	}
	b.WriteString(disclaimerMessage(a.language))

	return b.String(), true
}

// generatePreamble asks the text-generation capability for one framing
// sentence. Any failure returns "" and the caller proceeds without it.
func (a *Agent) generatePreamble(ctx context.Context, stream domain.Stream, careers []recommender.ScoredCareer) string {
	if a.gen == nil {
		return ""
	}
	resp, err := a.gen.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: preambleSystemPrompt,
		UserPrompt:   buildPreamblePrompt(a.profile, stream, careers),
	})
	if err != nil {
		a.log.Warn("preamble generation failed, delivering rule-formatted text", "error", err)
		return ""
	}
	return strings.TrimSpace(resp.Text)
}

// emit records the prompt so an empty follow-up utterance re-prompts with
// the identical text.
func (a *Agent) emit(prompt string) string {
	a.lastPrompt = prompt
	return prompt
}

// matchesAny reports whether the input contains one of the words.
// Single-letter shorthands ("y", "n") must match the whole input so they
// never fire on letters inside ordinary words.
func matchesAny(input string, words []string) bool {
	for _, w := range words {
		if utf8.RuneCountInString(w) == 1 {
			if input == w {
				return true
			}
			continue
		}
		if strings.Contains(input, w) {
			return true
		}
	}
	return false
}

// matchStreamName resolves an explicit stream answer, tolerating small typos
// via edit-distance ranking. Exact code matches win; fuzzy matches are
// accepted only within a distance of 2 so denials and unrelated words never
// resolve to a stream.
func matchStreamName(input string) (domain.Stream, bool) {
	if s, ok := domain.ParseStream(input); ok {
		return s, true
	}
	cleaned := strings.ToLower(strings.TrimSpace(input))
	if len(cleaned) < 3 {
		return "", false
	}

	best := domain.Stream("")
	bestRank := -1
	for _, s := range domain.AllStreams {
		rank := fuzzy.RankMatchNormalizedFold(cleaned, strings.ToLower(string(s)))
		if rank < 0 || rank > 2 {
			continue
		}
		if bestRank == -1 || rank < bestRank {
			best, bestRank = s, rank
		}
	}
	if bestRank == -1 {
		return "", false
	}
	return best, true
}
