// Package apiconnect wires the coalition.v1 CoalitionService onto Connect.
// It follows the layout protoc-gen-connect-go produces, with plain Go
// messages and JSONCodec instead of protobuf.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/coalition/pkg/api"
)

// CoalitionServiceName is the fully-qualified name of the CoalitionService service.
const CoalitionServiceName = "coalition.v1.CoalitionService"

// Procedure paths of the CoalitionService RPCs.
const (
	CoalitionServiceListPartiesProcedure      = "/coalition.v1.CoalitionService/ListParties"
	CoalitionServiceGetStatusProcedure        = "/coalition.v1.CoalitionService/GetStatus"
	CoalitionServiceUpdateSelectionProcedure  = "/coalition.v1.CoalitionService/UpdateSelection"
	CoalitionServiceFindCombinationsProcedure = "/coalition.v1.CoalitionService/FindCombinations"
	CoalitionServiceGetSuggestionsProcedure   = "/coalition.v1.CoalitionService/GetSuggestions"
	CoalitionServiceSetDarkModeProcedure      = "/coalition.v1.CoalitionService/SetDarkMode"
	CoalitionServiceExportReportProcedure     = "/coalition.v1.CoalitionService/ExportReport"
	CoalitionServiceGetReportProcedure        = "/coalition.v1.CoalitionService/GetReport"
	CoalitionServiceListReportsProcedure      = "/coalition.v1.CoalitionService/ListReports"
)

// CoalitionServiceClient is a client for the coalition.v1.CoalitionService service.
type CoalitionServiceClient interface {
	ListParties(context.Context, *connect.Request[api.ListPartiesRequest]) (*connect.Response[api.ListPartiesResponse], error)
	GetStatus(context.Context, *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error)
	UpdateSelection(context.Context, *connect.Request[api.UpdateSelectionRequest]) (*connect.Response[api.UpdateSelectionResponse], error)
	FindCombinations(context.Context, *connect.Request[api.FindCombinationsRequest]) (*connect.Response[api.FindCombinationsResponse], error)
	GetSuggestions(context.Context, *connect.Request[api.GetSuggestionsRequest]) (*connect.Response[api.GetSuggestionsResponse], error)
	SetDarkMode(context.Context, *connect.Request[api.SetDarkModeRequest]) (*connect.Response[api.SetDarkModeResponse], error)
	ExportReport(context.Context, *connect.Request[api.ExportReportRequest]) (*connect.Response[api.ExportReportResponse], error)
	GetReport(context.Context, *connect.Request[api.GetReportRequest]) (*connect.Response[api.GetReportResponse], error)
	ListReports(context.Context, *connect.Request[api.ListReportsRequest]) (*connect.Response[api.ListReportsResponse], error)
}

// NewCoalitionServiceClient constructs a client for the coalition.v1.CoalitionService
// service. baseURL is the server root, e.g. http://127.0.0.1:8080.
func NewCoalitionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CoalitionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &coalitionServiceClient{
		listParties: connect.NewClient[api.ListPartiesRequest, api.ListPartiesResponse](
			httpClient,
			baseURL+CoalitionServiceListPartiesProcedure,
			opts...,
		),
		getStatus: connect.NewClient[api.GetStatusRequest, api.GetStatusResponse](
			httpClient,
			baseURL+CoalitionServiceGetStatusProcedure,
			opts...,
		),
		updateSelection: connect.NewClient[api.UpdateSelectionRequest, api.UpdateSelectionResponse](
			httpClient,
			baseURL+CoalitionServiceUpdateSelectionProcedure,
			opts...,
		),
		findCombinations: connect.NewClient[api.FindCombinationsRequest, api.FindCombinationsResponse](
			httpClient,
			baseURL+CoalitionServiceFindCombinationsProcedure,
			opts...,
		),
		getSuggestions: connect.NewClient[api.GetSuggestionsRequest, api.GetSuggestionsResponse](
			httpClient,
			baseURL+CoalitionServiceGetSuggestionsProcedure,
			opts...,
		),
		setDarkMode: connect.NewClient[api.SetDarkModeRequest, api.SetDarkModeResponse](
			httpClient,
			baseURL+CoalitionServiceSetDarkModeProcedure,
			opts...,
		),
		exportReport: connect.NewClient[api.ExportReportRequest, api.ExportReportResponse](
			httpClient,
			baseURL+CoalitionServiceExportReportProcedure,
			opts...,
		),
		getReport: connect.NewClient[api.GetReportRequest, api.GetReportResponse](
			httpClient,
			baseURL+CoalitionServiceGetReportProcedure,
			opts...,
		),
		listReports: connect.NewClient[api.ListReportsRequest, api.ListReportsResponse](
			httpClient,
			baseURL+CoalitionServiceListReportsProcedure,
			opts...,
		),
	}
}

type coalitionServiceClient struct {
	listParties      *connect.Client[api.ListPartiesRequest, api.ListPartiesResponse]
	getStatus        *connect.Client[api.GetStatusRequest, api.GetStatusResponse]
	updateSelection  *connect.Client[api.UpdateSelectionRequest, api.UpdateSelectionResponse]
	findCombinations *connect.Client[api.FindCombinationsRequest, api.FindCombinationsResponse]
	getSuggestions   *connect.Client[api.GetSuggestionsRequest, api.GetSuggestionsResponse]
	setDarkMode      *connect.Client[api.SetDarkModeRequest, api.SetDarkModeResponse]
	exportReport     *connect.Client[api.ExportReportRequest, api.ExportReportResponse]
	getReport        *connect.Client[api.GetReportRequest, api.GetReportResponse]
	listReports      *connect.Client[api.ListReportsRequest, api.ListReportsResponse]
}

func (c *coalitionServiceClient) ListParties(ctx context.Context, req *connect.Request[api.ListPartiesRequest]) (*connect.Response[api.ListPartiesResponse], error) {
	return c.listParties.CallUnary(ctx, req)
}

func (c *coalitionServiceClient) GetStatus(ctx context.Context, req *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error) {
	return c.getStatus.CallUnary(ctx, req)
}

func (c *coalitionServiceClient) UpdateSelection(ctx context.Context, req *connect.Request[api.UpdateSelectionRequest]) (*connect.Response[api.UpdateSelectionResponse], error) {
	return c.updateSelection.CallUnary(ctx, req)
}

func (c *coalitionServiceClient) FindCombinations(ctx context.Context, req *connect.Request[api.FindCombinationsRequest]) (*connect.Response[api.FindCombinationsResponse], error) {
	return c.findCombinations.CallUnary(ctx, req)
}

func (c *coalitionServiceClient) GetSuggestions(ctx context.Context, req *connect.Request[api.GetSuggestionsRequest]) (*connect.Response[api.GetSuggestionsResponse], error) {
	return c.getSuggestions.CallUnary(ctx, req)
}

func (c *coalitionServiceClient) SetDarkMode(ctx context.Context, req *connect.Request[api.SetDarkModeRequest]) (*connect.Response[api.SetDarkModeResponse], error) {
	return c.setDarkMode.CallUnary(ctx, req)
}

func (c *coalitionServiceClient) ExportReport(ctx context.Context, req *connect.Request[api.ExportReportRequest]) (*connect.Response[api.ExportReportResponse], error) {
	return c.exportReport.CallUnary(ctx, req)
}

func (c *coalitionServiceClient) GetReport(ctx context.Context, req *connect.Request[api.GetReportRequest]) (*connect.Response[api.GetReportResponse], error) {
	return c.getReport.CallUnary(ctx, req)
}

func (c *coalitionServiceClient) ListReports(ctx context.Context, req *connect.Request[api.ListReportsRequest]) (*connect.Response[api.ListReportsResponse], error) {
	return c.listReports.CallUnary(ctx, req)
}

// CoalitionServiceHandler is an implementation of the coalition.v1.CoalitionService service.
type CoalitionServiceHandler interface {
	ListParties(context.Context, *connect.Request[api.ListPartiesRequest]) (*connect.Response[api.ListPartiesResponse], error)
	GetStatus(context.Context, *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error)
	UpdateSelection(context.Context, *connect.Request[api.UpdateSelectionRequest]) (*connect.Response[api.UpdateSelectionResponse], error)
	FindCombinations(context.Context, *connect.Request[api.FindCombinationsRequest]) (*connect.Response[api.FindCombinationsResponse], error)
	GetSuggestions(context.Context, *connect.Request[api.GetSuggestionsRequest]) (*connect.Response[api.GetSuggestionsResponse], error)
	SetDarkMode(context.Context, *connect.Request[api.SetDarkModeRequest]) (*connect.Response[api.SetDarkModeResponse], error)
	ExportReport(context.Context, *connect.Request[api.ExportReportRequest]) (*connect.Response[api.ExportReportResponse], error)
	GetReport(context.Context, *connect.Request[api.GetReportRequest]) (*connect.Response[api.GetReportResponse], error)
	ListReports(context.Context, *connect.Request[api.ListReportsRequest]) (*connect.Response[api.ListReportsResponse], error)
}

// NewCoalitionServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewCoalitionServiceHandler(svc CoalitionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	listPartiesHandler := connect.NewUnaryHandler(
		CoalitionServiceListPartiesProcedure,
		svc.ListParties,
		opts...,
	)
	getStatusHandler := connect.NewUnaryHandler(
		CoalitionServiceGetStatusProcedure,
		svc.GetStatus,
		opts...,
	)
	updateSelectionHandler := connect.NewUnaryHandler(
		CoalitionServiceUpdateSelectionProcedure,
		svc.UpdateSelection,
		opts...,
	)
	findCombinationsHandler := connect.NewUnaryHandler(
		CoalitionServiceFindCombinationsProcedure,
		svc.FindCombinations,
		opts...,
	)
	getSuggestionsHandler := connect.NewUnaryHandler(
		CoalitionServiceGetSuggestionsProcedure,
		svc.GetSuggestions,
		opts...,
	)
	setDarkModeHandler := connect.NewUnaryHandler(
		CoalitionServiceSetDarkModeProcedure,
		svc.SetDarkMode,
		opts...,
	)
	exportReportHandler := connect.NewUnaryHandler(
		CoalitionServiceExportReportProcedure,
		svc.ExportReport,
		opts...,
	)
	getReportHandler := connect.NewUnaryHandler(
		CoalitionServiceGetReportProcedure,
		svc.GetReport,
		opts...,
	)
	listReportsHandler := connect.NewUnaryHandler(
		CoalitionServiceListReportsProcedure,
		svc.ListReports,
		opts...,
	)
	return "/coalition.v1.CoalitionService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CoalitionServiceListPartiesProcedure:
			listPartiesHandler.ServeHTTP(w, r)
		case CoalitionServiceGetStatusProcedure:
			getStatusHandler.ServeHTTP(w, r)
		case CoalitionServiceUpdateSelectionProcedure:
			updateSelectionHandler.ServeHTTP(w, r)
		case CoalitionServiceFindCombinationsProcedure:
			findCombinationsHandler.ServeHTTP(w, r)
		case CoalitionServiceGetSuggestionsProcedure:
			getSuggestionsHandler.ServeHTTP(w, r)
		case CoalitionServiceSetDarkModeProcedure:
			setDarkModeHandler.ServeHTTP(w, r)
		case CoalitionServiceExportReportProcedure:
			exportReportHandler.ServeHTTP(w, r)
		case CoalitionServiceGetReportProcedure:
			getReportHandler.ServeHTTP(w, r)
		case CoalitionServiceListReportsProcedure:
			listReportsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCoalitionServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCoalitionServiceHandler struct{}

func (UnimplementedCoalitionServiceHandler) ListParties(context.Context, *connect.Request[api.ListPartiesRequest]) (*connect.Response[api.ListPartiesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.ListParties is not implemented"))
}

func (UnimplementedCoalitionServiceHandler) GetStatus(context.Context, *connect.Request[api.GetStatusRequest]) (*connect.Response[api.GetStatusResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.GetStatus is not implemented"))
}

func (UnimplementedCoalitionServiceHandler) UpdateSelection(context.Context, *connect.Request[api.UpdateSelectionRequest]) (*connect.Response[api.UpdateSelectionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.UpdateSelection is not implemented"))
}

func (UnimplementedCoalitionServiceHandler) FindCombinations(context.Context, *connect.Request[api.FindCombinationsRequest]) (*connect.Response[api.FindCombinationsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.FindCombinations is not implemented"))
}

func (UnimplementedCoalitionServiceHandler) GetSuggestions(context.Context, *connect.Request[api.GetSuggestionsRequest]) (*connect.Response[api.GetSuggestionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.GetSuggestions is not implemented"))
}

func (UnimplementedCoalitionServiceHandler) SetDarkMode(context.Context, *connect.Request[api.SetDarkModeRequest]) (*connect.Response[api.SetDarkModeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.SetDarkMode is not implemented"))
}

func (UnimplementedCoalitionServiceHandler) ExportReport(context.Context, *connect.Request[api.ExportReportRequest]) (*connect.Response[api.ExportReportResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.ExportReport is not implemented"))
}

func (UnimplementedCoalitionServiceHandler) GetReport(context.Context, *connect.Request[api.GetReportRequest]) (*connect.Response[api.GetReportResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.GetReport is not implemented"))
}

func (UnimplementedCoalitionServiceHandler) ListReports(context.Context, *connect.Request[api.ListReportsRequest]) (*connect.Response[api.ListReportsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("coalition.v1.CoalitionService.ListReports is not implemented"))
}
