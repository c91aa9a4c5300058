// Package simulator is the application state behind every front-end: the
// catalog, the user's selection, the dark-mode preference, and the store
// they are persisted in.
package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/coalition/internal/calculator"
	"github.com/mmynk/coalition/internal/catalog"
	"github.com/mmynk/coalition/internal/metrics"
	"github.com/mmynk/coalition/internal/models"
	"github.com/mmynk/coalition/internal/report"
	"github.com/mmynk/coalition/internal/selection"
	"github.com/mmynk/coalition/internal/storage"
)

// ErrUnknownParty is returned when an ID is not part of the catalog.
var ErrUnknownParty = errors.New("unknown party")

const (
	DefaultMaxSize         = 3
	DefaultSuggestionLimit = 5
)

// Options tune the coalition search.
type Options struct {
	MaxSize         int  // Largest coalition suggested
	SuggestionLimit int  // How many suggestions Suggestions returns
	Prune           bool // Use the branch-and-bound search
}

// Option customizes Simulator construction.
type Option func(*Simulator)

// WithOptions overrides the search options. Zero fields keep their defaults.
func WithOptions(o Options) Option {
	return func(s *Simulator) {
		if o.MaxSize > 0 {
			s.opts.MaxSize = o.MaxSize
		}
		if o.SuggestionLimit > 0 {
			s.opts.SuggestionLimit = o.SuggestionLimit
		}
		s.opts.Prune = o.Prune
	}
}

// WithMetrics records searches and selection changes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Simulator) {
		s.metrics = m
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		if now != nil {
			s.now = now
		}
	}
}

// Simulator is safe for concurrent use.
type Simulator struct {
	catalog *catalog.Catalog
	store   storage.Store
	opts    Options
	metrics *metrics.Metrics
	now     func() time.Time

	mu        sync.Mutex
	selection *selection.Set
	darkMode  bool
}

// New builds a Simulator and restores the saved selection and dark-mode
// preference from store. A corrupt snapshot is logged and ignored; saved IDs
// that are no longer in the catalog are dropped.
func New(ctx context.Context, cat *catalog.Catalog, store storage.Store, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		catalog:   cat,
		store:     store,
		opts:      Options{MaxSize: DefaultMaxSize, SuggestionLimit: DefaultSuggestionLimit},
		now:       time.Now,
		selection: selection.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.loadSelection(ctx); err != nil {
		return nil, err
	}
	if err := s.loadDarkMode(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulator) loadSelection(ctx context.Context) error {
	saved, err := s.store.Get(ctx, storage.KeySelection)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load selection: %w", err)
	}

	var ids []int
	if err := json.Unmarshal([]byte(saved), &ids); err != nil {
		slog.Error("Error loading saved selection", "error", err)
		return nil
	}
	for _, id := range ids {
		if !s.catalog.Contains(id) {
			slog.Warn("Dropping saved party missing from catalog", "party_id", id)
			continue
		}
		s.selection.Add(id)
	}
	slog.Debug("Selection restored", "party_ids", s.selection.IDs())
	return nil
}

func (s *Simulator) loadDarkMode(ctx context.Context) error {
	saved, err := s.store.Get(ctx, storage.KeyDarkMode)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load dark mode: %w", err)
	}
	s.darkMode = saved == "true"
	return nil
}

// Catalog returns the immutable catalog the simulator runs on.
func (s *Simulator) Catalog() *catalog.Catalog {
	return s.catalog
}

// Options returns the effective search options.
func (s *Simulator) Options() Options {
	return s.opts
}

// Selection returns the selected party IDs in ascending order.
func (s *Simulator) Selection() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

// IsSelected reports whether id is part of the selection.
func (s *Simulator) IsSelected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Contains(id)
}

// SelectedParties returns the selected parties in catalog order.
func (s *Simulator) SelectedParties() []models.Party {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedPartiesLocked()
}

func (s *Simulator) selectedPartiesLocked() []models.Party {
	var out []models.Party
	for _, p := range s.catalog.Parties() {
		if s.selection.Contains(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// Status evaluates the selection against the catalog majority.
func (s *Simulator) Status() calculator.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Simulator) statusLocked() calculator.Status {
	seats := calculator.SelectedSeats(s.catalog.Parties(), s.selection.IDs())
	return calculator.Evaluate(seats, s.catalog.Majority())
}

// Chart returns one bar per party, flagging the selected ones.
func (s *Simulator) Chart() []calculator.Bar {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.Chart(s.catalog.Parties(), s.selection.Contains)
}

// Filter returns the parties matching a search-box query.
func (s *Simulator) Filter(query string) []models.Party {
	return s.catalog.Filter(query)
}

// Toggle flips id in the selection and reports whether it is now selected.
func (s *Simulator) Toggle(ctx context.Context, id int) (bool, error) {
	if !s.catalog.Contains(id) {
		return false, fmt.Errorf("%w: %d", ErrUnknownParty, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.selection.Clone()
	selected := next.Toggle(id)
	if err := s.commitLocked(ctx, "toggle", next); err != nil {
		return s.selection.Contains(id), err
	}
	return selected, nil
}

// Select adds id to the selection.
func (s *Simulator) Select(ctx context.Context, id int) error {
	if !s.catalog.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownParty, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.selection.Clone()
	next.Add(id)
	return s.commitLocked(ctx, "add", next)
}

// Deselect removes id from the selection.
func (s *Simulator) Deselect(ctx context.Context, id int) error {
	if !s.catalog.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownParty, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.selection.Clone()
	next.Remove(id)
	return s.commitLocked(ctx, "remove", next)
}

// Apply replaces the selection with ids, typically a suggested combination.
// Nothing changes if any ID is unknown.
func (s *Simulator) Apply(ctx context.Context, ids []int) error {
	for _, id := range ids {
		if !s.catalog.Contains(id) {
			return fmt.Errorf("%w: %d", ErrUnknownParty, id)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commitLocked(ctx, "apply", selection.New(ids...))
}

// Reset clears the selection and deletes the saved snapshot.
// The selection is kept if the snapshot cannot be deleted.
func (s *Simulator) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, storage.KeySelection); err != nil {
		return fmt.Errorf("reset selection: %w", err)
	}
	s.selection = selection.New()
	s.metrics.SelectionChanged("reset")
	slog.Info("Selection reset")
	return nil
}

// commitLocked saves next and makes it the current selection. On error the
// current selection is left untouched.
func (s *Simulator) commitLocked(ctx context.Context, action string, next *selection.Set) error {
	ids := next.IDs()
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeySelection, string(data)); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	s.selection = next
	s.metrics.SelectionChanged(action)
	slog.Debug("Selection saved", "action", action, "party_ids", ids)
	return nil
}

// Suggestions returns the closest-to-majority combinations, at most
// SuggestionLimit of them.
func (s *Simulator) Suggestions() []models.Combination {
	all := s.Combinations(0, 0)
	if len(all) > s.opts.SuggestionLimit {
		all = all[:s.opts.SuggestionLimit]
	}
	return all
}

// Combinations runs the coalition search over the whole catalog.
// threshold <= 0 uses the catalog majority; maxSize <= 0 uses MaxSize.
func (s *Simulator) Combinations(threshold, maxSize int) []models.Combination {
	if threshold <= 0 {
		threshold = s.catalog.Majority()
	}
	if maxSize <= 0 {
		maxSize = s.opts.MaxSize
	}

	find := calculator.FindCombinations
	if s.opts.Prune {
		find = calculator.FindCombinationsPruned
	}

	start := time.Now()
	found := find(s.catalog.Parties(), threshold, maxSize)
	elapsed := time.Since(start)

	s.metrics.ObserveSearch(elapsed, len(found))
	slog.Debug("Coalition search finished",
		"threshold", threshold,
		"max_size", maxSize,
		"found", len(found),
		"duration_us", elapsed.Microseconds(),
	)
	return found
}

// Label joins the abbreviations of ids with " + ", e.g. "BJP + JD(U)".
func (s *Simulator) Label(ids []int) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		if p, ok := s.catalog.Party(id); ok {
			names[i] = p.Abbr
		} else {
			names[i] = "#" + strconv.Itoa(id)
		}
	}
	return strings.Join(names, " + ")
}

// DarkMode reports the saved theme preference.
func (s *Simulator) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// SetDarkMode stores the theme preference.
func (s *Simulator) SetDarkMode(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setDarkModeLocked(ctx, enabled)
}

// ToggleDarkMode flips the theme preference and returns the new value.
func (s *Simulator) ToggleDarkMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setDarkModeLocked(ctx, !s.darkMode); err != nil {
		return s.darkMode, err
	}
	return s.darkMode, nil
}

func (s *Simulator) setDarkModeLocked(ctx context.Context, enabled bool) error {
	if err := s.store.Set(ctx, storage.KeyDarkMode, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	s.darkMode = enabled
	slog.Debug("Dark mode toggled", "enabled", enabled)
	return nil
}

// Export renders the current selection as an analysis and records it in
// the report log.
func (s *Simulator) Export(ctx context.Context) (*models.Report, error) {
	s.mu.Lock()
	parties := s.selectedPartiesLocked()
	status := s.statusLocked()
	ids := s.selection.IDs()
	s.mu.Unlock()

	now := s.now()
	text := report.Render(report.Analysis{
		Title:       s.catalog.Title(),
		Source:      s.catalog.Source(),
		Parties:     parties,
		Seats:       status.Seats,
		Majority:    status.Majority,
		GeneratedAt: now,
	})

	rep := &models.Report{
		CreatedAt:   now.Unix(),
		PartyIDs:    ids,
		Seats:       status.Seats,
		Majority:    status.Majority,
		HasMajority: status.HasMajority(),
		Text:        text,
	}
	if err := s.store.CreateReport(ctx, rep); err != nil {
		return nil, fmt.Errorf("record report: %w", err)
	}
	s.metrics.Exported()
	slog.Info("Report exported", "report_id", rep.ID, "seats", rep.Seats, "has_majority", rep.HasMajority)
	return rep, nil
}

// Reports lists recorded exports, newest first.
func (s *Simulator) Reports(ctx context.Context, limit int) ([]*models.Report, error) {
	return s.store.ListReports(ctx, limit)
}

// Report retrieves one recorded export.
func (s *Simulator) Report(ctx context.Context, id string) (*models.Report, error) {
	return s.store.GetReport(ctx, id)
}
