// Package api defines the request and response messages of the
// coalition.v1 CoalitionService. Messages travel as JSON.
package api

// Selection actions accepted by UpdateSelection.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionToggle = "toggle"
	ActionClear  = "clear"
	ActionApply  = "apply"
)

type Party struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Abbr  string `json:"abbr"`
	Seats int    `json:"seats"`
}

type Combination struct {
	PartyIDs []int  `json:"party_ids"`
	Seats    int    `json:"seats"`
	Label    string `json:"label"` // e.g. "BJP + JD(U)"
}

type Status struct {
	Seats       int    `json:"seats"`
	Majority    int    `json:"majority"`
	Needed      int    `json:"needed"`
	State       string `json:"state"` // empty, short or majority
	HasMajority bool   `json:"has_majority"`
}

type Bar struct {
	PartyID  int     `json:"party_id"`
	Abbr     string  `json:"abbr"`
	Seats    int     `json:"seats"`
	Percent  float64 `json:"percent"`
	Selected bool    `json:"selected"`
}

type Report struct {
	ID          string `json:"id"`
	CreatedAt   int64  `json:"created_at"`
	PartyIDs    []int  `json:"party_ids"`
	Seats       int    `json:"seats"`
	Majority    int    `json:"majority"`
	HasMajority bool   `json:"has_majority"`
	Text        string `json:"text"`
}

type ListPartiesRequest struct {
	Query string `json:"query,omitempty"`
}

type ListPartiesResponse struct {
	Title      string   `json:"title"`
	TotalSeats int      `json:"total_seats"`
	Majority   int      `json:"majority"`
	Parties    []*Party `json:"parties"`
}

type GetStatusRequest struct{}

type GetStatusResponse struct {
	SelectedIDs []int   `json:"selected_ids"`
	Status      *Status `json:"status"`
	Chart       []*Bar  `json:"chart"`
	DarkMode    bool    `json:"dark_mode"`
}

type UpdateSelectionRequest struct {
	Action   string `json:"action"`
	PartyIDs []int  `json:"party_ids,omitempty"`
}

type UpdateSelectionResponse struct {
	SelectedIDs []int   `json:"selected_ids"`
	Status      *Status `json:"status"`
}

type FindCombinationsRequest struct {
	Threshold int `json:"threshold,omitempty"` // 0 uses the catalog majority
	MaxSize   int `json:"max_size,omitempty"`  // 0 uses the server default
	Limit     int `json:"limit,omitempty"`     // 0 returns every combination
}

type FindCombinationsResponse struct {
	Threshold    int            `json:"threshold"`
	MaxSize      int            `json:"max_size"`
	Total        int            `json:"total"` // Qualifying combinations before Limit
	Combinations []*Combination `json:"combinations"`
}

type GetSuggestionsRequest struct{}

type GetSuggestionsResponse struct {
	Combinations []*Combination `json:"combinations"`
}

type SetDarkModeRequest struct {
	// Enabled sets the preference; nil flips it.
	Enabled *bool `json:"enabled,omitempty"`
}

type SetDarkModeResponse struct {
	Enabled bool `json:"enabled"`
}

type ExportReportRequest struct{}

type ExportReportResponse struct {
	Report *Report `json:"report"`
}

type GetReportRequest struct {
	ID string `json:"id"`
}

type GetReportResponse struct {
	Report *Report `json:"report"`
}

type ListReportsRequest struct {
	Limit int `json:"limit,omitempty"`
}

type ListReportsResponse struct {
	Reports []*Report `json:"reports"`
}
