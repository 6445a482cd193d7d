package detector

import "github.com/margdarshak/disha/internal/domain"

// streamKeywords maps each stream to its association keywords, maintained
// separately per language. Matching is case-normalized substring containment.
var streamKeywords = map[domain.Stream]map[domain.Language][]string{
	domain.StreamPCM: {
		domain.LangEnglish: {"physics", "chemistry", "mathematics", "math", "pcm", "engineering", "tech"},
		domain.LangMarathi: {"भौतिकशास्त्र", "रसायनशास्त्र", "गणित", "अभियांत्रिकी"},
	},
	domain.StreamPCB: {
		domain.LangEnglish: {"biology", "bio", "medical", "medicine", "pcb", "healthcare", "doctor", "neet"},
		domain.LangMarathi: {"जीवशास्त्र", "वैद्यकीय", "औषध", "डॉक्टर", "आरोग्य"},
	},
	domain.StreamCommerce: {
		domain.LangEnglish: {"commerce", "accounting", "accountancy", "business", "economics", "finance", "ca"},
		domain.LangMarathi: {"वाणिज्य", "लेखा", "व्यवसाय", "अर्थशास्त्र", "वित्त"},
	},
	domain.StreamArts: {
		domain.LangEnglish: {"arts", "humanities", "history", "psychology", "sociology", "literature", "political"},
		domain.LangMarathi: {"कला", "मानवतावादी", "इतिहास", "मानसशास्त्र", "समाजशास्त्र", "साहित्य"},
	},
	domain.StreamVocational: {
		domain.LangEnglish: {"vocational", "skill", "trade", "technical", "certification", "diploma", "iti", "practical", "hands-on"},
		domain.LangMarathi: {"व्यावसायिक", "कौशल्य", "व्यापार", "तांत्रिक", "प्रमाणपत्र", "व्यावहारिक", "हाताने"},
	},
}

// forbiddenPatterns lists career-name fragments that must never be
// recommended to a student in the keyed stream, as a second line of defense
// behind the career-list membership check.
var forbiddenPatterns = map[domain.Stream][]string{
	domain.StreamArts:       {"engineering", "medical", "doctor", "mbbs", "neet", "jee", "chartered accountancy"},
	domain.StreamCommerce:   {"medical", "doctor", "mbbs", "neet", "engineering", "jee"},
	domain.StreamPCM:        {"medical", "doctor", "mbbs", "neet", "biology"},
	domain.StreamPCB:        {"software engineer", "core engineering", "jee", "computer science engineering"},
	domain.StreamVocational: {"mbbs", "neet", "jee", "engineering degree", "medical degree"},
}
