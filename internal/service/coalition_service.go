package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/coalition/internal/calculator"
	"github.com/mmynk/coalition/internal/middleware"
	"github.com/mmynk/coalition/internal/models"
	"github.com/mmynk/coalition/internal/simulator"
	"github.com/mmynk/coalition/internal/storage"
	"github.com/mmynk/coalition/pkg/api"
	"github.com/mmynk/coalition/pkg/api/apiconnect"
)

// maxSearchSize bounds FindCombinations requests; the search is exhaustive
// and grows combinatorially with max_size.
const maxSearchSize = 8

// Ensure CoalitionService implements apiconnect.CoalitionServiceHandler
var _ apiconnect.CoalitionServiceHandler = (*CoalitionService)(nil)

// CoalitionService implements the Connect CoalitionService
type CoalitionService struct {
	apiconnect.UnimplementedCoalitionServiceHandler
	sim *simulator.Simulator
}

// NewCoalitionService creates a new CoalitionService backed by sim.
func NewCoalitionService(sim *simulator.Simulator) *CoalitionService {
	return &CoalitionService{sim: sim}
}

// toConnectError maps simulator and storage errors onto Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case errors.Is(err, simulator.ErrUnknownParty):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toAPIStatus(s calculator.Status) *api.Status {
	return &api.Status{
		Seats:       s.Seats,
		Majority:    s.Majority,
		Needed:      s.Needed,
		State:       s.State.String(),
		HasMajority: s.HasMajority(),
	}
}

func toAPIReport(r *models.Report) *api.Report {
	return &api.Report{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		PartyIDs:    r.PartyIDs,
		Seats:       r.Seats,
		Majority:    r.Majority,
		HasMajority: r.HasMajority,
		Text:        r.Text,
	}
}

func (s *CoalitionService) toAPICombinations(combos []models.Combination) []*api.Combination {
	out := make([]*api.Combination, len(combos))
	for i, c := range combos {
		out[i] = &api.Combination{
			PartyIDs: c.PartyIDs,
			Seats:    c.Seats,
			Label:    s.sim.Label(c.PartyIDs),
		}
	}
	return out
}

// ListParties returns the catalog, optionally filtered by a search query.
func (s *CoalitionService) ListParties(ctx context.Context, req *connect.Request[api.ListPartiesRequest]) (*connect.Response[api.ListPartiesResponse], error) {
	cat := s.sim.Catalog()
	parties := s.sim.Filter(req.Msg.Query)

	out := make([]*api.Party, len(parties))
	for i, p := range parties {
		out[i] = &api.Party{ID: p.ID, Name: p.Name, Abbr: p.Abbr, Seats: p.Seats}
	}
	return connect.NewResponse(&api.ListPartiesResponse{
		Title:      cat.Title(),
		TotalSeats: cat.TotalSeats(),
		Majority:   cat.Majority(),
		Parties:    out,
	}), nil
}

// GetStatus returns the selection, its evaluation and the seat chart.
func (s *CoalitionService) GetStatus(ctx context.Context, req *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error) {
	bars := s.sim.Chart()
	chart := make([]*api.Bar, len(bars))
	for i, b := range bars {
		chart[i] = &api.Bar{
			PartyID:  b.Party.ID,
			Abbr:     b.Party.Abbr,
			Seats:    b.Party.Seats,
			Percent:  b.Percent,
			Selected: b.Selected,
		}
	}
	return connect.NewResponse(&api.GetStatusResponse{
		SelectedIDs: s.sim.Selection(),
		Status:      toAPIStatus(s.sim.Status()),
		Chart:       chart,
		DarkMode:    s.sim.DarkMode(),
	}), nil
}

// UpdateSelection applies one selection action.
func (s *CoalitionService) UpdateSelection(ctx context.Context, req *connect.Request[api.UpdateSelectionRequest]) (*connect.Response[api.UpdateSelectionResponse], error) {
	slog.Debug("UpdateSelection request received",
		"action", req.Msg.Action,
		"party_ids", req.Msg.PartyIDs,
		"request_id", middleware.GetRequestID(ctx),
	)

	var err error
	switch req.Msg.Action {
	case api.ActionAdd:
		err = s.eachID(req.Msg.PartyIDs, func(id int) error { return s.sim.Select(ctx, id) })
	case api.ActionRemove:
		err = s.eachID(req.Msg.PartyIDs, func(id int) error { return s.sim.Deselect(ctx, id) })
	case api.ActionToggle:
		err = s.eachID(req.Msg.PartyIDs, func(id int) error {
			_, err := s.sim.Toggle(ctx, id)
			return err
		})
	case api.ActionApply:
		if len(req.Msg.PartyIDs) == 0 {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("apply needs at least one party"))
		}
		err = s.sim.Apply(ctx, req.Msg.PartyIDs)
	case api.ActionClear:
		err = s.sim.Reset(ctx)
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown action %q", req.Msg.Action))
	}
	if err != nil {
		slog.Error("UpdateSelection failed", "action", req.Msg.Action, "error", err, "request_id", middleware.GetRequestID(ctx))
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateSelectionResponse{
		SelectedIDs: s.sim.Selection(),
		Status:      toAPIStatus(s.sim.Status()),
	}), nil
}

func (s *CoalitionService) eachID(ids []int, fn func(id int) error) error {
	if len(ids) == 0 {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("party_ids is required"))
	}
	cat := s.sim.Catalog()
	for _, id := range ids {
		if !cat.Contains(id) {
			return fmt.Errorf("%w: %d", simulator.ErrUnknownParty, id)
		}
	}
	for _, id := range ids {
		if err := fn(id); err != nil {
			return err
		}
	}
	return nil
}

// FindCombinations runs the coalition search with caller-chosen parameters.
func (s *CoalitionService) FindCombinations(ctx context.Context, req *connect.Request[api.FindCombinationsRequest]) (*connect.Response[api.FindCombinationsResponse], error) {
	msg := req.Msg
	if msg.MaxSize < 0 || msg.MaxSize > maxSearchSize {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("max_size must be between 0 and %d", maxSearchSize))
	}
	if msg.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("limit cannot be negative"))
	}

	threshold := msg.Threshold
	if threshold <= 0 {
		threshold = s.sim.Catalog().Majority()
	}
	maxSize := msg.MaxSize
	if maxSize == 0 {
		maxSize = s.sim.Options().MaxSize
	}

	found := s.sim.Combinations(threshold, maxSize)
	total := len(found)
	if msg.Limit > 0 && total > msg.Limit {
		found = found[:msg.Limit]
	}

	return connect.NewResponse(&api.FindCombinationsResponse{
		Threshold:    threshold,
		MaxSize:      maxSize,
		Total:        total,
		Combinations: s.toAPICombinations(found),
	}), nil
}

// GetSuggestions returns the closest-to-majority combinations.
func (s *CoalitionService) GetSuggestions(ctx context.Context, req *connect.Request[api.GetSuggestionsRequest]) (*connect.Response[api.GetSuggestionsResponse], error) {
	return connect.NewResponse(&api.GetSuggestionsResponse{
		Combinations: s.toAPICombinations(s.sim.Suggestions()),
	}), nil
}

// SetDarkMode stores the theme preference, or flips it when Enabled is nil.
func (s *CoalitionService) SetDarkMode(ctx context.Context, req *connect.Request[api.SetDarkModeRequest]) (*connect.Response[api.SetDarkModeResponse], error) {
	var (
		enabled bool
		err     error
	)
	if req.Msg.Enabled == nil {
		enabled, err = s.sim.ToggleDarkMode(ctx)
	} else {
		enabled = *req.Msg.Enabled
		err = s.sim.SetDarkMode(ctx, enabled)
	}
	if err != nil {
		slog.Error("SetDarkMode failed", "error", err, "request_id", middleware.GetRequestID(ctx))
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SetDarkModeResponse{Enabled: enabled}), nil
}

// ExportReport renders the current selection and records it.
func (s *CoalitionService) ExportReport(ctx context.Context, req *connect.Request[api.ExportReportRequest]) (*connect.Response[api.ExportReportResponse], error) {
	rep, err := s.sim.Export(ctx)
	if err != nil {
		slog.Error("ExportReport failed", "error", err, "request_id", middleware.GetRequestID(ctx))
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ExportReportResponse{Report: toAPIReport(rep)}), nil
}

// GetReport retrieves one recorded report.
func (s *CoalitionService) GetReport(ctx context.Context, req *connect.Request[api.GetReportRequest]) (*connect.Response[api.GetReportResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}
	rep, err := s.sim.Report(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetReportResponse{Report: toAPIReport(rep)}), nil
}

// ListReports lists recorded reports, newest first.
func (s *CoalitionService) ListReports(ctx context.Context, req *connect.Request[api.ListReportsRequest]) (*connect.Response[api.ListReportsResponse], error) {
	reports, err := s.sim.Reports(ctx, req.Msg.Limit)
	if err != nil {
		slog.Error("ListReports failed", "error", err, "request_id", middleware.GetRequestID(ctx))
		return nil, toConnectError(err)
	}
	out := make([]*api.Report, len(reports))
	for i, r := range reports {
		out[i] = toAPIReport(r)
	}
	return connect.NewResponse(&api.ListReportsResponse{Reports: out}), nil
}
