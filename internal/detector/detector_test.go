package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/domain"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Language
	}{
		{"english", "hello, I like physics and maths", domain.LangEnglish},
		{"marathi", "नमस्कार, मला गणित आवडते", domain.LangMarathi},
		{"mixed mostly devanagari", "मला engineering आवडते", domain.LangMarathi},
		{"mixed mostly latin", "I like गणित and physics and chemistry a lot", domain.LangEnglish},
		{"empty fails closed", "", domain.LangEnglish},
		{"digits only fails closed", "85-90%", domain.LangEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestDetectStream(t *testing.T) {
	tests := []struct {
		name      string
		favourite string
		weak      string
		interests string
		want      domain.Stream
		wantOK    bool
	}{
		{
			name:      "clear pcm signal",
			favourite: "physics, chemistry and maths",
			weak:      "history",
			interests: "robots and coding",
			want:      domain.StreamPCM,
			wantOK:    true,
		},
		{
			name:      "clear pcb signal",
			favourite: "biology and chemistry",
			weak:      "maths",
			interests: "I want to be a doctor, medicine fascinates me",
			want:      domain.StreamPCB,
			wantOK:    true,
		},
		{
			name:      "marathi keywords",
			favourite: "गणित आणि भौतिकशास्त्र",
			weak:      "",
			interests: "अभियांत्रिकी",
			want:      domain.StreamPCM,
			wantOK:    true,
		},
		{
			name:      "single keyword below floor",
			favourite: "physics",
			weak:      "",
			interests: "cricket",
			wantOK:    false,
		},
		{
			name:      "no signal at all",
			favourite: "everything",
			weak:      "nothing",
			interests: "sleeping",
			wantOK:    false,
		},
		{
			name:      "tie between streams",
			favourite: "physics and chemistry",
			weak:      "",
			interests: "doctor and healthcare",
			wantOK:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectStream(tt.favourite, tt.weak, tt.interests)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func alignmentFixture() *dataset.Dataset {
	return &dataset.Dataset{
		Streams: map[domain.Stream]dataset.StreamInfo{
			domain.StreamArts: {
				Name: "Arts / Humanities",
				Careers: []dataset.Career{
					{Name: "Journalism & Mass Communication"},
					{Name: "Psychology"},
					{Name: "Law"},
				},
			},
			domain.StreamPCM: {
				Name: "Science (PCM)",
				Careers: []dataset.Career{
					{Name: "Engineering"},
					{Name: "Data Science"},
				},
			},
		},
	}
}

func TestValidateStreamAlignment(t *testing.T) {
	d := alignmentFixture()

	t.Run("owned career passes", func(t *testing.T) {
		assert.True(t, ValidateStreamAlignment("Psychology", domain.StreamArts, d))
		assert.True(t, ValidateStreamAlignment("psychology", domain.StreamArts, d))
	})

	t.Run("career from another stream fails", func(t *testing.T) {
		assert.False(t, ValidateStreamAlignment("Engineering", domain.StreamArts, d))
		assert.False(t, ValidateStreamAlignment("Psychology", domain.StreamPCM, d))
	})

	t.Run("forbidden pattern fails even if listed", func(t *testing.T) {
		d := alignmentFixture()
		info := d.Streams[domain.StreamArts]
		info.Careers = append(info.Careers, dataset.Career{Name: "Medical Writing"})
		d.Streams[domain.StreamArts] = info

		assert.False(t, ValidateStreamAlignment("Medical Writing", domain.StreamArts, d))
	})

	t.Run("unknown stream fails", func(t *testing.T) {
		assert.False(t, ValidateStreamAlignment("Psychology", domain.Stream("Unknown"), d))
	})
}
