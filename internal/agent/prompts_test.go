package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/domain"
	"github.com/margdarshak/disha/internal/recommender"
)

func TestBuildPreamblePrompt(t *testing.T) {
	p := domain.NewStudentProfile()
	p.Update(domain.FieldInterests, "robots and coding")
	p.SetLanguage(domain.LangMarathi)

	careers := []recommender.ScoredCareer{
		{Career: dataset.Career{Name: "Engineering"}},
		{Career: dataset.Career{Name: "Data Science"}},
	}

	prompt := buildPreamblePrompt(p, domain.StreamPCM, careers)

	assert.Contains(t, prompt, "language: mr")
	assert.Contains(t, prompt, "stream: PCM")
	assert.Contains(t, prompt, "interests: robots and coding")
	assert.Contains(t, prompt, "selected careers: Engineering, Data Science")
}
