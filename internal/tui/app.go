// internal/tui/app.go
//
// Terminal front-end for the simulator. It follows the bubbletea (Elm)
// architecture: App holds the view state, Update applies key presses to the
// simulator, View renders the party list, status, chart and suggestions.

package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/coalition/internal/models"
	"github.com/mmynk/coalition/internal/report"
	"github.com/mmynk/coalition/internal/simulator"
)

// maxQuickPicks is how many suggestions get a number key.
const maxQuickPicks = 5

// ClipboardFunc copies export text somewhere the user can paste it.
type ClipboardFunc func(text string) error

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClipboard overrides the clipboard writer used by export.
func WithClipboard(fn ClipboardFunc) AppOption {
	return func(a *App) {
		if fn != nil {
			a.copy = fn
		}
	}
}

// App is the bubbletea model.
type App struct {
	ctx  context.Context
	sim  *simulator.Simulator
	copy ClipboardFunc

	search    textinput.Model
	searching bool
	visible   []models.Party
	cursor    int

	// The catalog is fixed, so suggestions are computed once.
	suggestions []models.Combination

	statusMsg string
	err       error
	exported  string // text shown when the clipboard is unavailable

	styles styles
	width  int
	height int
}

// NewApp creates an App over sim. ctx bounds storage calls.
func NewApp(ctx context.Context, sim *simulator.Simulator, opts ...AppOption) *App {
	in := textinput.New()
	in.Placeholder = "Search parties..."
	in.Prompt = "/ "
	in.CharLimit = 40
	in.Width = 30

	a := &App{
		ctx:         ctx,
		sim:         sim,
		copy:        report.Copy,
		search:      in,
		suggestions: sim.Suggestions(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.applyTheme()
	a.refilter()
	return a
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, sim *simulator.Simulator, opts ...AppOption) error {
	p := tea.NewProgram(NewApp(ctx, sim, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.searching {
			return a.updateSearch(msg)
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.searching = false
		a.search.Blur()
		return a, nil
	case tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.refilter()
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.refilter()
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.err = nil

	switch key := msg.String(); key {
	case "q":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}

	case " ", "enter":
		a.toggleCurrent()

	case "/":
		a.searching = true
		a.exported = ""
		return a, a.search.Focus()

	case "esc", "r":
		a.reset()

	case "d":
		a.toggleDarkMode()

	case "e":
		a.export()

	case "1", "2", "3", "4", "5":
		a.applySuggestion(int(key[0] - '1'))
	}
	return a, nil
}

func (a *App) toggleCurrent() {
	if a.cursor >= len(a.visible) {
		return
	}
	p := a.visible[a.cursor]
	selected, err := a.sim.Toggle(a.ctx, p.ID)
	if err != nil {
		a.fail("toggle party", err)
		return
	}
	verb := "Removed"
	if selected {
		verb = "Added"
	}
	a.statusMsg = fmt.Sprintf("%s %s (%d)", verb, p.Abbr, p.Seats)
}

func (a *App) applySuggestion(i int) {
	if i < 0 || i >= len(a.suggestions) || i >= maxQuickPicks {
		return
	}
	c := a.suggestions[i]
	if err := a.sim.Apply(a.ctx, c.PartyIDs); err != nil {
		a.fail("apply suggestion", err)
		return
	}
	a.statusMsg = fmt.Sprintf("Applied %s = %d seats", a.sim.Label(c.PartyIDs), c.Seats)
}

func (a *App) reset() {
	if err := a.sim.Reset(a.ctx); err != nil {
		a.fail("reset selection", err)
		return
	}
	a.exported = ""
	a.statusMsg = "Selection cleared"
}

func (a *App) toggleDarkMode() {
	enabled, err := a.sim.ToggleDarkMode(a.ctx)
	if err != nil {
		a.fail("save theme", err)
	}
	a.applyTheme()
	if err == nil {
		if enabled {
			a.statusMsg = "Dark mode on"
		} else {
			a.statusMsg = "Dark mode off"
		}
	}
}

func (a *App) export() {
	rep, err := a.sim.Export(a.ctx)
	if err != nil {
		a.fail("export analysis", err)
		return
	}
	if err := a.copy(rep.Text); err != nil {
		slog.Warn("Clipboard unavailable, showing export inline", "error", err)
		a.exported = rep.Text
		a.statusMsg = "Clipboard unavailable; analysis shown below"
		return
	}
	a.exported = ""
	a.statusMsg = "Analysis copied to clipboard!"
}

func (a *App) fail(action string, err error) {
	slog.Error("TUI action failed", "action", action, "error", err)
	a.err = fmt.Errorf("%s: %w", action, err)
	a.statusMsg = ""
}

func (a *App) applyTheme() {
	if a.sim.DarkMode() {
		a.styles = newStyles(DarkTheme())
	} else {
		a.styles = newStyles(LightTheme())
	}
	a.search.PromptStyle = a.styles.cursor
	a.search.TextStyle = a.styles.text
}

func (a *App) refilter() {
	a.visible = a.sim.Filter(a.search.Value())
	if a.cursor >= len(a.visible) {
		a.cursor = max(len(a.visible)-1, 0)
	}
}
