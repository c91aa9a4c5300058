package calculator

import "github.com/mmynk/coalition/internal/models"

// State classifies a selection against the majority mark.
type State int

const (
	StateEmpty    State = iota // Nothing selected
	StateShort                 // Some seats, below majority
	StateMajority              // Majority reached
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateShort:
		return "short"
	case StateMajority:
		return "majority"
	default:
		return "unknown"
	}
}

// Status is the evaluated outcome of a selection.
type Status struct {
	Seats    int
	Majority int
	Needed   int // Seats still missing; 0 unless State is StateShort
	State    State
}

// HasMajority reports whether the selection reached the majority mark.
func (s Status) HasMajority() bool {
	return s.State == StateMajority
}

// Bar is one row of the seat chart.
type Bar struct {
	Party    models.Party
	Percent  float64 // Seats relative to the largest party, 0-100
	Selected bool
}

// SelectedSeats sums the seats of the parties whose ID is in ids.
// IDs missing from parties contribute nothing.
func SelectedSeats(parties []models.Party, ids []int) int {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	total := 0
	for _, p := range parties {
		if want[p.ID] {
			total += p.Seats
		}
	}
	return total
}

// Evaluate compares seats against majority.
func Evaluate(seats, majority int) Status {
	status := Status{Seats: seats, Majority: majority}
	switch {
	case seats == 0:
		status.State = StateEmpty
	case seats >= majority:
		status.State = StateMajority
	default:
		status.State = StateShort
		status.Needed = majority - seats
	}
	return status
}

// Chart scales every party against the largest seat count, in catalog order.
func Chart(parties []models.Party, selected func(id int) bool) []Bar {
	maxSeats := 0
	for _, p := range parties {
		maxSeats = max(maxSeats, p.Seats)
	}

	bars := make([]Bar, len(parties))
	for i, p := range parties {
		bars[i] = Bar{Party: p}
		if maxSeats > 0 {
			bars[i].Percent = float64(p.Seats) / float64(maxSeats) * 100
		}
		if selected != nil {
			bars[i].Selected = selected(p.ID)
		}
	}
	return bars
}
