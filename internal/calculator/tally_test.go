package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/coalition/internal/models"
)

func TestSelectedSeats(t *testing.T) {
	parties := fourParties()

	tests := []struct {
		name string
		ids  []int
		want int
	}{
		{"nothing selected", nil, 0},
		{"single party", []int{3}, 25},
		{"pair", []int{1, 2}, 174},
		{"unknown ids count as zero", []int{1, 99}, 89},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectedSeats(parties, tt.ids))
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		seats int
		want  Status
	}{
		{"empty", 0, Status{Seats: 0, Majority: 122, State: StateEmpty}},
		{"short", 114, Status{Seats: 114, Majority: 122, Needed: 8, State: StateShort}},
		{"exactly majority", 122, Status{Seats: 122, Majority: 122, State: StateMajority}},
		{"above majority", 174, Status{Seats: 174, Majority: 122, State: StateMajority}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.seats, 122)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.State == StateMajority, got.HasMajority())
		})
	}
}

func TestChart(t *testing.T) {
	selected := map[int]bool{2: true}
	bars := Chart(fourParties(), func(id int) bool { return selected[id] })

	if assert.Len(t, bars, 4) {
		assert.Equal(t, 1, bars[0].Party.ID)
		assert.InDelta(t, 100.0, bars[0].Percent, 0.001)
		assert.InDelta(t, 85.0/89.0*100, bars[1].Percent, 0.001)
		assert.True(t, bars[1].Selected)
		assert.False(t, bars[0].Selected)
	}
}

func TestChart_AllZeroSeats(t *testing.T) {
	bars := Chart([]models.Party{{ID: 1}, {ID: 2}}, nil)
	for _, b := range bars {
		assert.Zero(t, b.Percent)
		assert.False(t, b.Selected)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "short", StateShort.String())
	assert.Equal(t, "majority", StateMajority.String())
	assert.Equal(t, "unknown", State(9).String())
}
