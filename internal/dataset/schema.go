package dataset

import (
	"github.com/margdarshak/disha/internal/domain"
)

// Dataset is the top-level structure of the career/question data file.
// It is loaded once at startup and treated as read-only afterwards.
type Dataset struct {
	Streams   map[domain.Stream]StreamInfo `json:"streams"`
	Questions QuestionBank                 `json:"questions"`
}

// StreamInfo describes one academic stream and the careers it owns.
type StreamInfo struct {
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
	Careers  []Career `json:"careers"`
}

// Career is an immutable career record owned by exactly one stream.
type Career struct {
	Name          string   `json:"name"`
	Pathway       string   `json:"pathway"`
	EntranceExams []string `json:"entrance_exams"`
	Skills        []string `json:"skills"`
	Risks         string   `json:"risks"`
}

// QuestionBank holds the general pool and the per-stream pools.
// Question order within each pool is fixed and never reordered at runtime.
type QuestionBank struct {
	General        []Question                   `json:"general"`
	StreamSpecific map[domain.Stream][]Question `json:"stream_specific"`
}

// Question carries both language variants of one prompt.
type Question struct {
	ID     string `json:"id"`
	TextEN string `json:"text_en"`
	TextMR string `json:"text_mr"`
}

// Text returns the question in the requested language, falling back to the
// other variant when the requested one is missing in the data file.
func (q Question) Text(lang domain.Language) string {
	if lang == domain.LangMarathi {
		if q.TextMR != "" {
			return q.TextMR
		}
		return q.TextEN
	}
	if q.TextEN != "" {
		return q.TextEN
	}
	return q.TextMR
}

// StreamName returns the display name for a stream, or the code itself when
// the stream is not in the dataset.
func (d *Dataset) StreamName(s domain.Stream) string {
	if info, ok := d.Streams[s]; ok && info.Name != "" {
		return info.Name
	}
	return string(s)
}

// StreamCareers returns the careers owned by a stream. Unknown streams yield
// an empty slice, not an error; the caller decides how to degrade.
func (d *Dataset) StreamCareers(s domain.Stream) []Career {
	info, ok := d.Streams[s]
	if !ok {
		return nil
	}
	return info.Careers
}

// StreamQuestions returns the ordered stream-specific question pool.
func (d *Dataset) StreamQuestions(s domain.Stream) []Question {
	return d.Questions.StreamSpecific[s]
}
