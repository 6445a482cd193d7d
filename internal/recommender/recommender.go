package recommender

import (
	"sort"

	"github.com/samber/lo"

	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/detector"
	"github.com/margdarshak/disha/internal/domain"
)

// maxRecommendations is the fixed number of careers returned to a student.
const maxRecommendations = 3

// Recommender selects stream-aligned careers from the dataset.
type Recommender struct {
	data    *dataset.Dataset
	weights ScoringWeights
}

// New creates a Recommender over a loaded dataset.
func New(data *dataset.Dataset) *Recommender {
	return &Recommender{data: data, weights: DefaultWeights()}
}

// StreamCareers returns every career the stream owns. Unknown streams yield
// an empty slice so the caller decides how to degrade.
func (r *Recommender) StreamCareers(stream domain.Stream) []dataset.Career {
	return r.data.StreamCareers(stream)
}

// FilterCareers scores all of the stream's careers against the profile and
// returns the top three, or all available when the stream owns fewer. Ties
// keep the dataset's original order. Every returned career passes the
// stream-alignment gate; a dataset career that fails it is skipped rather
// than surfaced.
func (r *Recommender) FilterCareers(stream domain.Stream, profile *domain.StudentProfile) []ScoredCareer {
	careers := r.StreamCareers(stream)
	if len(careers) == 0 {
		return nil
	}

	scored := lo.Map(careers, func(c dataset.Career, _ int) ScoredCareer {
		return ScoreCareer(ScoringInput{
			Career:  c,
			Stream:  stream,
			Profile: profile,
			Weights: r.weights,
		})
	})

	// Stable sort keeps dataset order on equal scores: first-listed wins.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	aligned := lo.Filter(scored, func(sc ScoredCareer, _ int) bool {
		return detector.ValidateStreamAlignment(sc.Career.Name, stream, r.data)
	})

	if len(aligned) > maxRecommendations {
		aligned = aligned[:maxRecommendations]
	}
	return aligned
}
