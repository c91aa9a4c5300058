package models

// Party represents one party in the seat catalog.
type Party struct {
	// ID is the stable identifier of the party. Unique within a catalog.
	ID int `yaml:"id" json:"id"`

	// Name is the full display name (e.g., "Bharatiya Janata Party").
	Name string `yaml:"name" json:"name"`

	// Abbr is the short label used in charts and suggestions (e.g., "BJP").
	Abbr string `yaml:"abbr" json:"abbr"`

	// Seats is the number of legislative seats won. Never negative.
	Seats int `yaml:"seats" json:"seats"`
}

// Combination is a candidate coalition: a set of party IDs and their
// combined seats.
type Combination struct {
	// PartyIDs lists the members in catalog order.
	PartyIDs []int `json:"party_ids"`

	// Seats is the sum of the members' seats at the time of the search.
	Seats int `json:"seats"`
}

// Size returns the number of parties in the combination.
func (c Combination) Size() int {
	return len(c.PartyIDs)
}
