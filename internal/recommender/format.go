package recommender

import (
	"fmt"
	"strings"

	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/domain"
)

// Section labels in both languages, in the fixed output order.
type sectionLabels struct {
	justification string
	pathway       string
	exams         string
	skills        string
	risks         string
}

var labelsByLang = map[domain.Language]sectionLabels{
	domain.LangEnglish: {
		justification: "Stream Justification",
		pathway:       "Education Pathway",
		exams:         "Entrance Exams",
		skills:        "Required Skills",
		risks:         "Risks/Limitations",
	},
	domain.LangMarathi: {
		justification: "स्ट्रीम औचित्य",
		pathway:       "शैक्षणिक मार्ग",
		exams:         "प्रवेश परीक्षा",
		skills:        "आवश्यक कौशल्ये",
		risks:         "जोखीम/मर्यादा",
	},
}

// FormatRecommendation renders one career as a fixed-structure text block:
// name, stream justification, pathway, exams, skills, risks, in that order,
// with explicit line breaks. Structure never comes from generated text.
func (r *Recommender) FormatRecommendation(career dataset.Career, stream domain.Stream, lang domain.Language, position int) string {
	labels, ok := labelsByLang[lang]
	if !ok {
		labels = labelsByLang[domain.LangEnglish]
	}

	justification := fmt.Sprintf("This career aligns with the %s stream.", r.data.StreamName(stream))
	if lang == domain.LangMarathi {
		justification = fmt.Sprintf("ही करिअर %s स्ट्रीमशी संरेखित आहे.", r.data.StreamName(stream))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%d. %s**\n\n", position, career.Name)
	fmt.Fprintf(&b, "**%s:** %s\n\n", labels.justification, justification)
	fmt.Fprintf(&b, "**%s:** %s\n\n", labels.pathway, career.Pathway)
	fmt.Fprintf(&b, "**%s:** %s\n\n", labels.exams, strings.Join(career.EntranceExams, ", "))
	fmt.Fprintf(&b, "**%s:** %s\n\n", labels.skills, strings.Join(career.Skills, ", "))
	fmt.Fprintf(&b, "**%s:** %s\n", labels.risks, career.Risks)
	return b.String()
}
