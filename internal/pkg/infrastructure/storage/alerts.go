package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" {
		return ErrNoID
	}

	parameters, err := json.Marshal(alert.Parameters)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	args := pgx.NamedArgs{
		"alert_id":          alert.ID,
		"alert_type_code":   alert.AlertTypeCode,
		"device_id":         alert.DeviceID,
		"device_session_id": alert.DeviceSessionID,
		"gateway_id":        alert.GatewayID,
		"device_auth_id":    alert.DeviceAuthID,
		"data_collector_id": alert.DataCollectorID,
		"packet_id":         alert.PacketID,
		"parameters":        parameters,
		"visible":           alert.Visible,
		"created_at":        alert.CreatedAt,
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, alert_type_code, device_id, device_session_id, gateway_id, device_auth_id, data_collector_id, packet_id, parameters, visible, created_at)
		VALUES (@alert_id, @alert_type_code, @device_id, @device_session_id, @gateway_id, @device_auth_id, @data_collector_id, @packet_id, @parameters, @visible, @created_at)
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()

	query := fmt.Sprintf(`
		SELECT a.alert_id, a.alert_type_code, a.device_id, a.device_session_id, a.gateway_id, a.device_auth_id, a.data_collector_id, a.packet_id, a.parameters, a.visible, a.created_at
		FROM alerts a
		LEFT JOIN data_collectors dc ON dc.data_collector_id = a.data_collector_id
		WHERE %s
	`, condition.Where())

	var alert types.Alert
	var parameters []byte

	err := s.pool.QueryRow(ctx, query, args).Scan(
		&alert.ID, &alert.AlertTypeCode, &alert.DeviceID, &alert.DeviceSessionID, &alert.GatewayID,
		&alert.DeviceAuthID, &alert.DataCollectorID, &alert.PacketID, &parameters, &alert.Visible, &alert.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	if len(parameters) > 0 {
		err = json.Unmarshal(parameters, &alert.Parameters)
		if err != nil {
			return types.Alert{}, err
		}
	}

	return alert, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()

	query := fmt.Sprintf(`
		SELECT a.alert_id, a.alert_type_code, a.device_id, a.device_session_id, a.gateway_id, a.device_auth_id, a.data_collector_id, a.packet_id, a.parameters, a.visible, a.created_at, count(*) OVER () AS count
		FROM alerts a
		LEFT JOIN data_collectors dc ON dc.data_collector_id = a.data_collector_id
		WHERE %s
		ORDER BY a.%s %s
		%s
	`, condition.Where(), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	var alert_id, alert_type_code, data_collector_id, packet_id string
	var device_id, device_session_id, gateway_id, device_auth_id *string
	var parameters []byte
	var visible bool
	var created_at time.Time
	var count int64

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{&alert_id, &alert_type_code, &device_id, &device_session_id, &gateway_id, &device_auth_id, &data_collector_id, &packet_id, &parameters, &visible, &created_at, &count}, func() error {
		alert := types.Alert{
			ID:              alert_id,
			AlertTypeCode:   alert_type_code,
			DeviceID:        device_id,
			DeviceSessionID: device_session_id,
			GatewayID:       gateway_id,
			DeviceAuthID:    device_auth_id,
			DataCollectorID: data_collector_id,
			PacketID:        packet_id,
			Visible:         visible,
			CreatedAt:       created_at,
		}

		if len(parameters) > 0 {
			err := json.Unmarshal(parameters, &alert.Parameters)
			if err != nil {
				return err
			}
		}

		alerts = append(alerts, alert)

		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}
