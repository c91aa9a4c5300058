// Package catalog loads and validates the fixed party list a simulation runs on.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/coalition/internal/models"
)

//go:embed bihar2025.yaml
var defaultCatalogYAML []byte

var (
	ErrEmpty         = errors.New("catalog has no parties")
	ErrDuplicateID   = errors.New("duplicate party id")
	ErrNegativeSeats = errors.New("negative seat count")
	ErrMissingName   = errors.New("party name and abbreviation are required")
	ErrSeatOverflow  = errors.New("party seats exceed total seats")
	ErrBadMajority   = errors.New("majority must be between 1 and total seats")
)

// file mirrors the YAML document.
type file struct {
	Title      string         `yaml:"title"`
	Source     string         `yaml:"source"`
	TotalSeats int            `yaml:"total_seats"`
	Majority   int            `yaml:"majority"`
	Parties    []models.Party `yaml:"parties"`
}

// Catalog is an immutable, validated party list.
type Catalog struct {
	title      string
	source     string
	totalSeats int
	majority   int
	parties    []models.Party
	index      map[int]int
}

// Default returns the embedded Bihar 2025 catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Load reads a catalog from path. An empty path loads the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog.
//
// A zero total_seats defaults to the sum of party seats and a zero majority
// to total_seats/2 + 1.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(f.Title, f.Source, f.TotalSeats, f.Majority, f.Parties)
}

// New validates parties and builds a Catalog from them.
func New(title, source string, totalSeats, majority int, parties []models.Party) (*Catalog, error) {
	if len(parties) == 0 {
		return nil, ErrEmpty
	}

	index := make(map[int]int, len(parties))
	sum := 0
	for i, p := range parties {
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		if p.Seats < 0 {
			return nil, fmt.Errorf("%w: party %d has %d", ErrNegativeSeats, p.ID, p.Seats)
		}
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Abbr) == "" {
			return nil, fmt.Errorf("%w: party %d", ErrMissingName, p.ID)
		}
		index[p.ID] = i
		sum += p.Seats
	}

	if totalSeats == 0 {
		totalSeats = sum
	}
	if sum > totalSeats {
		return nil, fmt.Errorf("%w: %d > %d", ErrSeatOverflow, sum, totalSeats)
	}
	if majority == 0 {
		majority = totalSeats/2 + 1
	}
	if majority < 1 || majority > totalSeats {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadMajority, majority, totalSeats)
	}

	return &Catalog{
		title:      title,
		source:     source,
		totalSeats: totalSeats,
		majority:   majority,
		parties:    append([]models.Party(nil), parties...),
		index:      index,
	}, nil
}

func (c *Catalog) Title() string   { return c.title }
func (c *Catalog) Source() string  { return c.source }
func (c *Catalog) TotalSeats() int { return c.totalSeats }
func (c *Catalog) Majority() int   { return c.majority }
func (c *Catalog) Len() int        { return len(c.parties) }

// Parties returns a copy of the parties in catalog order.
func (c *Catalog) Parties() []models.Party {
	return append([]models.Party(nil), c.parties...)
}

// Party looks up a party by ID.
func (c *Catalog) Party(id int) (models.Party, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Party{}, false
	}
	return c.parties[i], true
}

// Contains reports whether id belongs to the catalog.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// Filter returns the parties whose name or abbreviation contains query,
// ignoring case. An empty query matches every party.
func (c *Catalog) Filter(query string) []models.Party {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Parties()
	}

	fold := cases.Fold()
	needle := fold.String(query)
	var out []models.Party
	for _, p := range c.parties {
		if strings.Contains(fold.String(p.Name), needle) || strings.Contains(fold.String(p.Abbr), needle) {
			out = append(out, p)
		}
	}
	return out
}
