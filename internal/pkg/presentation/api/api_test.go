package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/application/alerts"
	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/presentation/api/auth"
	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestQueryAlertsHandler(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, params map[string][]string, organizations []string) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{
				Data: []types.Alert{
					{ID: "a1", AlertTypeCode: "LAF-002", DataCollectorID: "c1", Visible: true},
				},
				Count:      1,
				TotalCount: 1,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts?type=LAF-002", nil)
	req = req.WithContext(auth.WithAllowedOrganizations(req.Context(), []string{"org-1"}))
	res := httptest.NewRecorder()

	queryAlertsHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(svc.QueryCalls()))
	is.Equal([]string{"org-1"}, svc.QueryCalls()[0].Organizations)
	is.Equal("LAF-002", svc.QueryCalls()[0].Params["type"][0])

	response := struct {
		Meta struct {
			TotalRecords uint64 `json:"totalRecords"`
			Count        uint64 `json:"count"`
		} `json:"meta"`
		Data []types.Alert `json:"data"`
	}{}

	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(uint64(1), response.Meta.TotalRecords)
	is.Equal("a1", response.Data[0].ID)
}

func TestGetAlertDetails(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		GetByIDFunc: func(ctx context.Context, alertID string, organizations []string) (types.Alert, error) {
			return types.Alert{ID: alertID, AlertTypeCode: "LAF-006", DataCollectorID: "c1"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts/a1", nil)
	req = withURLParam(req, "alertID", "a1")
	res := httptest.NewRecorder()

	getAlertDetails(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	alert := types.Alert{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &alert))
	is.Equal("a1", alert.ID)
	is.Equal("LAF-006", alert.AlertTypeCode)
}

func TestGetUnknownAlertReturns404(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		GetByIDFunc: func(ctx context.Context, alertID string, organizations []string) (types.Alert, error) {
			return types.Alert{}, alerts.ErrAlertNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts/nope", nil)
	req = withURLParam(req, "alertID", "nope")
	res := httptest.NewRecorder()

	getAlertDetails(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestGetAlertMessage(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		GetByIDFunc: func(ctx context.Context, alertID string, organizations []string) (types.Alert, error) {
			return types.Alert{
				ID:              alertID,
				AlertTypeCode:   "LAF-002",
				DataCollectorID: "c1",
				PacketID:        "pkt-1",
				CreatedAt:       time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC),
			}, nil
		},
		RenderMessageFunc: func(ctx context.Context, alert types.Alert) (string, error) {
			return "LAF-002-Possible ABP device sensor1", nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts/a1/message", nil)
	req = withURLParam(req, "alertID", "a1")
	res := httptest.NewRecorder()

	getAlertMessage(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal("text/plain", res.Header().Get("Content-Type"))
	is.Equal("LAF-002-Possible ABP device sensor1", res.Body.String())
}

func TestQueryQuarantinesHandler(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		QuarantinesFunc: func(ctx context.Context, params map[string][]string, organizations []string) (types.Collection[types.Quarantine], error) {
			return types.Collection[types.Quarantine]{
				Data:       []types.Quarantine{{ID: "q1", AlertTypeCode: "LAF-002", DataCollectorID: "c1"}},
				Count:      1,
				TotalCount: 1,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/quarantines?resolved=false", nil)
	req = req.WithContext(auth.WithAllowedOrganizations(req.Context(), []string{"org-1"}))
	res := httptest.NewRecorder()

	queryQuarantinesHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(svc.QuarantinesCalls()))
	is.Equal("false", svc.QuarantinesCalls()[0].Params["resolved"][0])
	is.Equal([]string{"org-1"}, svc.QuarantinesCalls()[0].Organizations)
}

func TestResolveQuarantineHandler(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		ResolveQuarantineFunc: func(ctx context.Context, quarantineID, note string, organizations []string) error {
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/quarantines/q1", strings.NewReader(`{"note":"device confirmed as OTAA"}`))
	req = req.WithContext(auth.WithAllowedOrganizations(req.Context(), []string{"org-1"}))
	req = withURLParam(req, "quarantineID", "q1")
	res := httptest.NewRecorder()

	resolveQuarantineHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(svc.ResolveQuarantineCalls()))
	is.Equal("q1", svc.ResolveQuarantineCalls()[0].QuarantineID)
	is.Equal("device confirmed as OTAA", svc.ResolveQuarantineCalls()[0].Note)
	is.Equal([]string{"org-1"}, svc.ResolveQuarantineCalls()[0].Organizations)
}

func TestResolveUnknownQuarantineReturns404(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		ResolveQuarantineFunc: func(ctx context.Context, quarantineID, note string, organizations []string) error {
			return alerts.ErrQuarantineNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/quarantines/nope", strings.NewReader(`{}`))
	req = withURLParam(req, "quarantineID", "nope")
	res := httptest.NewRecorder()

	resolveQuarantineHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}
