package models

// Report is an exported coalition analysis.
// Every export is recorded so the user can look back at earlier scenarios.
type Report struct {
	// ID is the unique identifier for the report (UUID format).
	ID string

	// CreatedAt is the Unix timestamp when the report was generated.
	CreatedAt int64

	// PartyIDs is the selection the report was generated for.
	PartyIDs []int

	// Seats is the combined seat count of the selection.
	Seats int

	// Majority is the majority mark in effect when the report was generated.
	Majority int

	// HasMajority reports whether Seats reached Majority.
	HasMajority bool

	// Text is the rendered analysis, exactly as it was exported.
	Text string
}
