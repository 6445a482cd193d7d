package dataset

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/margdarshak/disha/internal/domain"
)

// Validate checks a Dataset for structural defects. It returns a slice of
// errors (empty if valid). Defects here are configuration problems, not
// runtime failures: the agent keeps working and degrades per defect.
func Validate(d *Dataset) []error {
	var errs []error

	for _, s := range domain.AllStreams {
		info, ok := d.Streams[s]
		if !ok {
			errs = append(errs, fmt.Errorf("stream %s: missing from dataset", s))
			continue
		}
		if info.Name == "" {
			errs = append(errs, fmt.Errorf("stream %s: name is required", s))
		}
		if len(info.Careers) == 0 {
			errs = append(errs, fmt.Errorf("stream %s: career list is empty", s))
		} else if len(info.Careers) < 3 {
			errs = append(errs, fmt.Errorf("stream %s: owns %d careers, fewer than 3 recommendations can be produced", s, len(info.Careers)))
		}
		careerNames := map[string]bool{}
		for i, c := range info.Careers {
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("stream %s: career[%d]: name is required", s, i))
				continue
			}
			if careerNames[c.Name] {
				errs = append(errs, fmt.Errorf("stream %s: duplicate career %q", s, c.Name))
			}
			careerNames[c.Name] = true
			if c.Pathway == "" {
				errs = append(errs, fmt.Errorf("stream %s: career %q: pathway is required", s, c.Name))
			}
			if len(c.EntranceExams) == 0 {
				errs = append(errs, fmt.Errorf("stream %s: career %q: entrance exams are required", s, c.Name))
			}
		}
		if len(d.Questions.StreamSpecific[s]) == 0 {
			errs = append(errs, fmt.Errorf("stream %s: no stream-specific questions", s))
		}
	}

	if len(d.Questions.General) == 0 {
		errs = append(errs, fmt.Errorf("general question pool is empty"))
	}
	errs = append(errs, validateQuestions("general", d.Questions.General)...)
	for s, qs := range d.Questions.StreamSpecific {
		errs = append(errs, validateQuestions(string(s), qs)...)
	}

	return errs
}

func validateQuestions(pool string, qs []Question) []error {
	var errs []error
	ids := lo.CountValuesBy(qs, func(q Question) string { return q.ID })
	for i, q := range qs {
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("%s question[%d]: id is required", pool, i))
			continue
		}
		if ids[q.ID] > 1 {
			errs = append(errs, fmt.Errorf("%s question[%d]: duplicate id %q", pool, i, q.ID))
			ids[q.ID] = 1 // report once
		}
		if q.TextEN == "" && q.TextMR == "" {
			errs = append(errs, fmt.Errorf("%s question %q: no text in either language", pool, q.ID))
		} else if q.TextEN == "" || q.TextMR == "" {
			errs = append(errs, fmt.Errorf("%s question %q: missing a language variant", pool, q.ID))
		}
	}
	return errs
}
