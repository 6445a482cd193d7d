package domain

// Profile field names collected by the general questions.
const (
	FieldFavouriteSubjects = "favourite_subjects"
	FieldWeakSubjects      = "weak_subjects"
	FieldMarksRange        = "marks_range"
	FieldInterests         = "interests"
	FieldPersonalityTraits = "personality_traits"
	FieldBudgetPreference  = "budget_preference"
)

// StudentProfile accumulates answers across one conversation. It is mutated
// only by the agent, one field per answered question. The stream is nil until
// the confirmation step completes and immutable afterwards.
type StudentProfile struct {
	FavouriteSubjects string
	WeakSubjects      string
	MarksRange        string
	Interests         string
	PersonalityTraits string
	BudgetPreference  string
	Stream            *Stream
	StreamAptitude    map[string]string // stream question id -> answer
	Language          Language
}

// NewStudentProfile returns an empty profile with the default language.
func NewStudentProfile() *StudentProfile {
	return &StudentProfile{
		StreamAptitude: map[string]string{},
		Language:       LangEnglish,
	}
}

// Update stores a value under a recognized general-question field.
// Unknown fields are silently ignored.
func (p *StudentProfile) Update(field, value string) {
	switch field {
	case FieldFavouriteSubjects:
		p.FavouriteSubjects = value
	case FieldWeakSubjects:
		p.WeakSubjects = value
	case FieldMarksRange:
		p.MarksRange = value
	case FieldInterests:
		p.Interests = value
	case FieldPersonalityTraits:
		p.PersonalityTraits = value
	case FieldBudgetPreference:
		p.BudgetPreference = value
	}
}

// SetStream records the confirmed stream. The first call wins; later calls
// are ignored so the stream stays immutable for the rest of the conversation.
func (p *StudentProfile) SetStream(s Stream) {
	if p.Stream != nil {
		return
	}
	p.Stream = &s
}

// SetAptitude stores a stream-specific answer under its question id.
func (p *StudentProfile) SetAptitude(questionID, answer string) {
	if p.StreamAptitude == nil {
		p.StreamAptitude = map[string]string{}
	}
	p.StreamAptitude[questionID] = answer
}

// SetLanguage records the detected or pinned conversation language.
func (p *StudentProfile) SetLanguage(lang Language) {
	p.Language = lang
}

// IsComplete reports whether every general-question field, the stream, and
// the given number of stream-specific answers are present.
func (p *StudentProfile) IsComplete(streamQuestions int) bool {
	if p.FavouriteSubjects == "" || p.WeakSubjects == "" || p.MarksRange == "" || p.Interests == "" {
		return false
	}
	if p.Stream == nil {
		return false
	}
	return len(p.StreamAptitude) >= streamQuestions
}

// Reset clears every field back to its initial state.
func (p *StudentProfile) Reset() {
	*p = *NewStudentProfile()
}
