package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/coalition/internal/calculator"
	"github.com/mmynk/coalition/internal/catalog"
	"github.com/mmynk/coalition/internal/models"
	"github.com/mmynk/coalition/internal/simulator"
	"github.com/mmynk/coalition/internal/storage/sqlite"
)

func newTestApp(t *testing.T, opts ...AppOption) (*App, *simulator.Simulator) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "coalition.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cat, err := catalog.Default()
	require.NoError(t, err)
	sim, err := simulator.New(context.Background(), cat, store)
	require.NoError(t, err)

	return NewApp(context.Background(), sim, opts...), sim
}

func press(t *testing.T, a *App, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = a.Update(k)
		require.Same(t, a, model)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func visibleIDs(a *App) []int {
	ids := make([]int, len(a.visible))
	for i, p := range a.visible {
		ids[i] = p.ID
	}
	return ids
}

func TestCursorAndToggle(t *testing.T) {
	app, sim := newTestApp(t)

	press(t, app, keyUp)
	assert.Equal(t, 0, app.cursor, "cursor must not move above the first party")

	press(t, app, keyDown, keySpace)
	assert.Equal(t, []int{2}, sim.Selection())
	assert.Equal(t, "Added JD(U) (85)", app.statusMsg)

	press(t, app, runes("k"), keySpace)
	assert.Equal(t, []int{1, 2}, sim.Selection())
	assert.Equal(t, calculator.StateMajority, sim.Status().State)

	press(t, app, keySpace)
	assert.Equal(t, []int{2}, sim.Selection())
	assert.Equal(t, "Removed BJP (89)", app.statusMsg)

	for range 20 {
		press(t, app, keyDown)
	}
	assert.Equal(t, len(app.visible)-1, app.cursor)
}

func TestSearch(t *testing.T) {
	app, sim := newTestApp(t)

	press(t, app, runes("/"))
	require.True(t, app.searching)

	press(t, app, runes("j"), runes("a"), runes("n"), runes("a"), runes("t"), runes("a"))
	assert.Equal(t, []int{1, 2, 3}, visibleIDs(app))

	// Letters go to the search box, not the key bindings.
	assert.Empty(t, sim.Selection())

	press(t, app, keyEnter)
	assert.False(t, app.searching)
	assert.Equal(t, "janata", app.search.Value())

	press(t, app, keyDown, keyDown, keySpace)
	assert.Equal(t, []int{3}, sim.Selection())

	press(t, app, runes("/"), runes("z"), runes("z"))
	assert.Empty(t, app.visible)
	assert.Contains(t, app.View(), "No parties match your search")

	press(t, app, keyEsc)
	assert.False(t, app.searching)
	assert.Empty(t, app.search.Value())
	assert.Len(t, app.visible, 12)
}

func TestApplySuggestionAndReset(t *testing.T) {
	app, sim := newTestApp(t)
	require.NotEmpty(t, app.suggestions)

	press(t, app, runes("1"))
	assert.Equal(t, []int{2, 3, 4}, sim.Selection())
	assert.Equal(t, "Applied JD(U) + RJD + LJPRV = 129 seats", app.statusMsg)
	assert.True(t, sim.Status().HasMajority())

	press(t, app, runes("r"))
	assert.Empty(t, sim.Selection())
	assert.Equal(t, "Selection cleared", app.statusMsg)

	press(t, app, runes("2"), keyEsc)
	assert.Empty(t, sim.Selection(), "esc resets outside search")
}

func TestDarkMode(t *testing.T) {
	app, sim := newTestApp(t)
	require.False(t, sim.DarkMode())

	press(t, app, runes("d"))
	assert.True(t, sim.DarkMode())
	assert.Equal(t, "Dark mode on", app.statusMsg)
	assert.Equal(t, newStyles(DarkTheme()).title.GetForeground(), app.styles.title.GetForeground())

	press(t, app, runes("d"))
	assert.False(t, sim.DarkMode())
	assert.Equal(t, "Dark mode off", app.statusMsg)
}

func TestExport(t *testing.T) {
	var copied string
	app, sim := newTestApp(t, WithClipboard(func(text string) error {
		copied = text
		return nil
	}))

	press(t, app, runes("1"), runes("e"))
	assert.Equal(t, "Analysis copied to clipboard!", app.statusMsg)
	assert.Contains(t, copied, "TOTAL SEATS: 129")
	assert.Contains(t, copied, "MAJORITY REACHED")
	assert.Empty(t, app.exported)

	reports, err := sim.Reports(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, copied, reports[0].Text)
}

func TestExportWithoutClipboard(t *testing.T) {
	app, _ := newTestApp(t, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	press(t, app, runes("e"))
	assert.Contains(t, app.statusMsg, "Clipboard unavailable")
	assert.Contains(t, app.exported, "No parties selected")
	assert.Contains(t, app.View(), "Seats Needed: 122")
}

func TestView(t *testing.T) {
	app, _ := newTestApp(t)
	press(t, app, runes("1"))

	view := app.View()
	for _, want := range []string{
		"Bihar Election 2025",
		"majority 122",
		"Possible Majority Coalitions",
		"JD(U) + RJD + LJPRV = 129 seats",
		"Majority reached",
		"Seats: 129 / 122",
	} {
		assert.True(t, strings.Contains(view, want), "view missing %q", want)
	}
}

func TestQuit(t *testing.T) {
	app, _ := newTestApp(t)

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		cmd := press(t, app, k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestNoSuggestions(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "coalition.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cat, err := catalog.New("Tiny", "", 10, 8, []models.Party{
		{ID: 1, Name: "Alpha", Abbr: "A", Seats: 3},
		{ID: 2, Name: "Beta", Abbr: "B", Seats: 2},
	})
	require.NoError(t, err)
	sim, err := simulator.New(context.Background(), cat, store)
	require.NoError(t, err)

	app := NewApp(context.Background(), sim)
	assert.Empty(t, app.suggestions)
	assert.Contains(t, app.View(), "No combination reaches majority")

	press(t, app, runes("1"))
	assert.Empty(t, sim.Selection())
}
