package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/coalition/internal/models"
)

func sampleAnalysis(parties []models.Party) Analysis {
	seats := 0
	for _, p := range parties {
		seats += p.Seats
	}
	return Analysis{
		Title:       "Bihar Election 2025",
		Source:      "Election Commission of India (November 2025)",
		Parties:     parties,
		Seats:       seats,
		Majority:    122,
		GeneratedAt: time.Date(2025, 11, 14, 18, 30, 5, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		parties     []models.Party
		contains    []string
		notContains []string
	}{
		{
			name:    "majority",
			parties: []models.Party{{ID: 1, Abbr: "BJP", Seats: 89}, {ID: 2, Abbr: "JD(U)", Seats: 85}},
			contains: []string{
				"Bihar Election 2025 - Coalition Analysis",
				"Generated: 14/11/2025, 18:30:05",
				"BJP (89)\nJD(U) (85)\n",
				"TOTAL SEATS: 174",
				"MAJORITY REQUIRED: 122",
				"STATUS: ✅ MAJORITY REACHED",
				"Data Source: Election Commission of India (November 2025)",
			},
			notContains: []string{"Seats Needed", "No parties selected"},
		},
		{
			name:     "minority",
			parties:  []models.Party{{ID: 3, Abbr: "RJD", Seats: 25}},
			contains: []string{"STATUS: ❌ MINORITY", "Seats Needed: 97"},
		},
		{
			name:     "nothing selected",
			contains: []string{"No parties selected", "TOTAL SEATS: 0", "Seats Needed: 122"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := Render(sampleAnalysis(tt.parties))
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, text, unwanted)
			}
			assert.True(t, strings.HasSuffix(text, "Simulated using Bihar Election 2025 Government Formation Simulator"))
		})
	}
}

func TestCopy(t *testing.T) {
	orig := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = orig })

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	require.NoError(t, Copy("hello"))
	assert.Equal(t, "hello", copied)

	clipboardWriteAll = func(string) error { return errors.New("no clipboard utilities available") }
	err := Copy("hello")
	assert.ErrorContains(t, err, "copy to clipboard")
}
