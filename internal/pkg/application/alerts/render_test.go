package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func renderSetup(t *testing.T) (context.Context, *is.I, *AlertStorageMock, AlertService) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlertStorageMock{
		GetAlertTypeFunc: func(ctx context.Context, code string) (types.AlertType, error) {
			return types.AlertType{
				Code:    "LAF-002",
				Message: "Possible ABP device on {collector.name}: {dev_name} sent packet {packet_id} at {created_at}",
			}, nil
		},
		GetDataCollectorFunc: func(ctx context.Context, dataCollectorID string) (types.DataCollector, error) {
			return types.DataCollector{ID: "c1", Name: "north site"}, nil
		},
	}

	svc := New(s, &PolicyCheckerMock{}, &messaging.MsgContextMock{})

	return ctx, is, s, svc
}

func TestRenderMessageSubstitutesParameters(t *testing.T) {
	ctx, is, _, svc := renderSetup(t)

	message, err := svc.RenderMessage(ctx, types.Alert{
		AlertTypeCode:   "LAF-002",
		DataCollectorID: "c1",
		PacketID:        "pkt-1",
		Parameters:      map[string]any{"dev_name": "sensor1"},
		CreatedAt:       time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	})
	is.NoErr(err)
	is.Equal("LAF-002-Possible ABP device on north site (ID c1): sensor1 sent packet pkt-1 at 2025-03-14 09:26", message)
}

func TestRenderMessageLeavesUnresolvedPlaceholdersVerbatim(t *testing.T) {
	ctx, is, s, svc := renderSetup(t)

	s.GetAlertTypeFunc = func(ctx context.Context, code string) (types.AlertType, error) {
		return types.AlertType{Code: "LAF-004", Message: "gateway {gw_name} changed location"}, nil
	}

	message, err := svc.RenderMessage(ctx, types.Alert{
		AlertTypeCode:   "LAF-004",
		DataCollectorID: "c1",
	})
	is.NoErr(err)
	is.Equal("LAF-004-gateway {gw_name} changed location", message)
}

func TestRenderMessageWithoutCollector(t *testing.T) {
	ctx, is, s, svc := renderSetup(t)

	s.GetDataCollectorFunc = func(ctx context.Context, dataCollectorID string) (types.DataCollector, error) {
		return types.DataCollector{}, storage.ErrNoRows
	}

	message, err := svc.RenderMessage(ctx, types.Alert{
		AlertTypeCode:   "LAF-002",
		DataCollectorID: "c1",
		PacketID:        "pkt-1",
		Parameters:      map[string]any{"dev_name": "sensor1"},
		CreatedAt:       time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	})
	is.NoErr(err)
	is.Equal("LAF-002-Possible ABP device on {collector.name}: sensor1 sent packet pkt-1 at 2025-03-14 09:26", message)
}

func TestRenderMessageUnknownAlertType(t *testing.T) {
	ctx, is, s, svc := renderSetup(t)

	s.GetAlertTypeFunc = func(ctx context.Context, code string) (types.AlertType, error) {
		return types.AlertType{}, storage.ErrNoRows
	}

	_, err := svc.RenderMessage(ctx, types.Alert{AlertTypeCode: "LAF-123"})
	is.True(errors.Is(err, ErrAlertTypeNotFound))
}
