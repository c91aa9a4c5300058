package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/coalition/internal/models"
)

func TestDefault(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Bihar Election 2025", cat.Title())
	assert.Equal(t, 243, cat.TotalSeats())
	assert.Equal(t, 122, cat.Majority())
	assert.Equal(t, 12, cat.Len())

	bjp, ok := cat.Party(1)
	require.True(t, ok)
	assert.Equal(t, "BJP", bjp.Abbr)
	assert.Equal(t, 89, bjp.Seats)

	assert.False(t, cat.Contains(13))
}

func TestNew_Validation(t *testing.T) {
	ok := func(id, seats int) models.Party {
		return models.Party{ID: id, Name: "Party", Abbr: "P", Seats: seats}
	}

	tests := []struct {
		name       string
		totalSeats int
		majority   int
		parties    []models.Party
		wantErr    error
	}{
		{"empty", 0, 0, nil, ErrEmpty},
		{"duplicate id", 0, 0, []models.Party{ok(1, 1), ok(1, 2)}, ErrDuplicateID},
		{"negative seats", 0, 0, []models.Party{ok(1, -1)}, ErrNegativeSeats},
		{"missing abbreviation", 0, 0, []models.Party{{ID: 1, Name: "Party", Seats: 1}}, ErrMissingName},
		{"seats exceed total", 5, 0, []models.Party{ok(1, 4), ok(2, 4)}, ErrSeatOverflow},
		{"majority above total", 10, 11, []models.Party{ok(1, 4)}, ErrBadMajority},
		{"negative majority", 10, -1, []models.Party{ok(1, 4)}, ErrBadMajority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("t", "s", tt.totalSeats, tt.majority, tt.parties)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	cat, err := New("", "", 0, 0, []models.Party{
		{ID: 1, Name: "A", Abbr: "A", Seats: 50},
		{ID: 2, Name: "B", Abbr: "B", Seats: 51},
	})
	require.NoError(t, err)
	assert.Equal(t, 101, cat.TotalSeats())
	assert.Equal(t, 51, cat.Majority())
}

func TestParties_ReturnsCopy(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	parties := cat.Parties()
	parties[0].Seats = 0

	bjp, _ := cat.Party(1)
	assert.Equal(t, 89, bjp.Seats, "catalog must not change through a returned slice")
}

func TestFilter(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	tests := []struct {
		query   string
		wantIDs []int
	}{
		{"", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"  ", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"bjp", []int{1}},
		{"JANATA", []int{1, 2, 3}},
		{"communist", []int{9, 10}},
		{"cpi(m", []int{9, 10}},
		{"nothing like this", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []int
			for _, p := range cat.Filter(tt.query) {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path loads default", func(t *testing.T) {
		cat, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 12, cat.Len())
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		data := []byte(`title: Test House
total_seats: 10
parties:
  - {id: 1, name: Left, abbr: L, seats: 4}
  - {id: 2, name: Right, abbr: R, seats: 5}
`)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		cat, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Test House", cat.Title())
		assert.Equal(t, 6, cat.Majority())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("parties: [oops"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
