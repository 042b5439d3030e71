package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	err = SeedAlertTypes(ctx, s, []types.AlertType{
		{
			Code:    "LAF-002",
			Message: "Possible ABP device {dev_name}",
			Parameters: map[string]any{
				"threshold": 1,
			},
		},
		{
			Code:    "LAF-010",
			Message: "Gateway changed location",
		},
	})
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func TestAddAndGetAlert(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	alert := types.Alert{
		ID:              uuid.NewString(),
		AlertTypeCode:   "LAF-002",
		DataCollectorID: "c1",
		PacketID:        uuid.NewString(),
		Parameters:      map[string]any{"dev_name": "sensor1"},
		Visible:         true,
		CreatedAt:       time.Now().UTC(),
	}

	err := s.AddAlert(ctx, alert)
	is.NoErr(err)

	stored, err := s.GetAlert(ctx, WithAlertID(alert.ID))
	is.NoErr(err)
	is.Equal(alert.ID, stored.ID)
	is.Equal("LAF-002", stored.AlertTypeCode)
	is.Equal("sensor1", stored.Parameters["dev_name"])
	is.True(stored.Visible)
}

func TestGetUnknownAlert(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, err := s.GetAlert(ctx, WithAlertID(uuid.NewString()))
	is.True(errors.Is(err, ErrNoRows))
}

func TestQueryAlertsByType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	alert := types.Alert{
		ID:              uuid.NewString(),
		AlertTypeCode:   "LAF-010",
		DataCollectorID: "c1",
		PacketID:        uuid.NewString(),
		Visible:         true,
		CreatedAt:       time.Now().UTC(),
	}
	is.NoErr(s.AddAlert(ctx, alert))

	c, err := s.QueryAlerts(ctx, WithAlertType("LAF-010"), WithLimit(10))
	is.NoErr(err)
	is.True(len(c.Data) > 0)
	is.True(c.TotalCount > 0)
}

func TestQuarantineLifecycle(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := uuid.NewString()
	collectorID := uuid.NewString()

	q := types.Quarantine{
		ID:              uuid.NewString(),
		AlertTypeCode:   "LAF-002",
		DeviceID:        &deviceID,
		DataCollectorID: collectorID,
		AlertID:         uuid.NewString(),
		Since:           time.Now().UTC(),
	}

	is.NoErr(s.AddQuarantine(ctx, q))

	open, err := s.GetOpenQuarantine(ctx, "LAF-002", &deviceID, nil, collectorID)
	is.NoErr(err)
	is.Equal(q.ID, open.ID)
	is.True(!open.Resolved)

	newAlertID := uuid.NewString()
	is.NoErr(s.RefreshQuarantine(ctx, q.ID, newAlertID))

	open, err = s.GetOpenQuarantine(ctx, "LAF-002", &deviceID, nil, collectorID)
	is.NoErr(err)
	is.Equal(newAlertID, open.AlertID)

	is.NoErr(s.ResolveQuarantine(ctx, q.ID, "device confirmed as OTAA"))

	_, err = s.GetOpenQuarantine(ctx, "LAF-002", &deviceID, nil, collectorID)
	is.True(errors.Is(err, ErrNoRows))

	err = s.ResolveQuarantine(ctx, q.ID, "again")
	is.True(errors.Is(err, ErrResolved))
}

func TestResolveUnknownQuarantine(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := s.ResolveQuarantine(ctx, uuid.NewString(), "")
	is.True(errors.Is(err, ErrNoRows))
}

func TestOnlyOneOpenQuarantinePerKey(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := uuid.NewString()
	collectorID := uuid.NewString()

	first := types.Quarantine{
		ID:              uuid.NewString(),
		AlertTypeCode:   "LAF-002",
		DeviceID:        &deviceID,
		DataCollectorID: collectorID,
		AlertID:         uuid.NewString(),
		Since:           time.Now().UTC(),
	}
	is.NoErr(s.AddQuarantine(ctx, first))

	second := first
	second.ID = uuid.NewString()
	err := s.AddQuarantine(ctx, second)
	is.True(err != nil)
}

func TestQueryQuarantinesFiltersByCollectorAndType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	collectorID := uuid.NewString()
	otherCollectorID := uuid.NewString()

	for _, cid := range []string{collectorID, otherCollectorID} {
		deviceID := uuid.NewString()
		is.NoErr(s.AddQuarantine(ctx, types.Quarantine{
			ID:              uuid.NewString(),
			AlertTypeCode:   "LAF-002",
			DeviceID:        &deviceID,
			DataCollectorID: cid,
			AlertID:         uuid.NewString(),
			Since:           time.Now().UTC(),
		}))
	}

	c, err := s.QueryQuarantines(ctx, WithDataCollectorID(collectorID))
	is.NoErr(err)
	is.Equal(uint64(1), c.TotalCount)
	is.Equal(collectorID, c.Data[0].DataCollectorID)

	c, err = s.QueryQuarantines(ctx, WithDataCollectorID(collectorID), WithAlertType("LAF-006"))
	is.NoErr(err)
	is.Equal(uint64(0), c.TotalCount)
}

func TestQueryQuarantinesByID(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceID := uuid.NewString()

	q := types.Quarantine{
		ID:              uuid.NewString(),
		AlertTypeCode:   "LAF-002",
		DeviceID:        &deviceID,
		DataCollectorID: uuid.NewString(),
		AlertID:         uuid.NewString(),
		Since:           time.Now().UTC(),
	}
	is.NoErr(s.AddQuarantine(ctx, q))

	c, err := s.QueryQuarantines(ctx, WithQuarantineID(q.ID))
	is.NoErr(err)
	is.Equal(uint64(1), c.TotalCount)
	is.Equal(q.ID, c.Data[0].ID)
}

func TestSeedAlertTypesUpserts(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := SeedAlertTypes(ctx, s, []types.AlertType{
		{Code: "LAF-010", Message: "Gateway changed location (updated)"},
	})
	is.NoErr(err)

	at, err := s.GetAlertType(ctx, "LAF-010")
	is.NoErr(err)
	is.Equal("Gateway changed location (updated)", at.Message)

	// restore for other tests
	is.NoErr(SeedAlertTypes(ctx, s, []types.AlertType{
		{Code: "LAF-010", Message: "Gateway changed location"},
	}))
}

func TestPolicyItems(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	policyID := uuid.NewString()

	item := types.PolicyItem{
		ID:            uuid.NewString(),
		PolicyID:      policyID,
		AlertTypeCode: "LAF-002",
		Enabled:       true,
		Parameters:    map[string]any{"threshold": float64(5)},
	}

	is.NoErr(s.AddPolicyItem(ctx, item))

	// a second insert for the same (policy, alert type) pair is ignored
	dupe := item
	dupe.ID = uuid.NewString()
	is.NoErr(s.AddPolicyItem(ctx, dupe))

	is.NoErr(s.SetPolicyItemParameters(ctx, item.ID, map[string]any{"threshold": float64(7)}))
}
