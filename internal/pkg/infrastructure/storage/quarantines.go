package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/jackc/pgx/v5"
)

// GetOpenQuarantine returns the single unresolved quarantine for the given
// (alert type, device, session, collector) key, or ErrNoRows.
func (s *Storage) GetOpenQuarantine(ctx context.Context, alertTypeCode string, deviceID, deviceSessionID *string, dataCollectorID string) (types.Quarantine, error) {
	args := pgx.NamedArgs{
		"alert_type_code":   alertTypeCode,
		"device_id":         deviceID,
		"device_session_id": deviceSessionID,
		"data_collector_id": dataCollectorID,
	}

	var q types.Quarantine
	var resolution_note *string

	err := s.pool.QueryRow(ctx, `
		SELECT quarantine_id, alert_type_code, device_id, device_session_id, data_collector_id, alert_id, since, last_checked, resolved, resolved_at, resolution_note
		FROM quarantines
		WHERE alert_type_code = @alert_type_code
		  AND device_id IS NOT DISTINCT FROM @device_id
		  AND device_session_id IS NOT DISTINCT FROM @device_session_id
		  AND data_collector_id = @data_collector_id
		  AND NOT resolved
	`, args).Scan(&q.ID, &q.AlertTypeCode, &q.DeviceID, &q.DeviceSessionID, &q.DataCollectorID,
		&q.AlertID, &q.Since, &q.LastChecked, &q.Resolved, &q.ResolvedAt, &resolution_note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Quarantine{}, ErrNoRows
		}
		return types.Quarantine{}, err
	}

	if resolution_note != nil {
		q.ResolutionNote = *resolution_note
	}

	return q, nil
}

func (s *Storage) AddQuarantine(ctx context.Context, q types.Quarantine) error {
	if q.ID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"quarantine_id":     q.ID,
		"alert_type_code":   q.AlertTypeCode,
		"device_id":         q.DeviceID,
		"device_session_id": q.DeviceSessionID,
		"data_collector_id": q.DataCollectorID,
		"alert_id":          q.AlertID,
		"since":             q.Since,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO quarantines (quarantine_id, alert_type_code, device_id, device_session_id, data_collector_id, alert_id, since, last_checked)
		VALUES (@quarantine_id, @alert_type_code, @device_id, @device_session_id, @data_collector_id, @alert_id, @since, @since)
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

// RefreshQuarantine records that a suppressed alert matched an open window.
func (s *Storage) RefreshQuarantine(ctx context.Context, quarantineID, alertID string) error {
	args := pgx.NamedArgs{
		"quarantine_id": quarantineID,
		"alert_id":      alertID,
	}

	_, err := s.pool.Exec(ctx, `
		UPDATE quarantines
		SET alert_id = @alert_id, last_checked = CURRENT_TIMESTAMP
		WHERE quarantine_id = @quarantine_id AND NOT resolved
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) ResolveQuarantine(ctx context.Context, quarantineID, note string) error {
	var resolved bool

	err := s.pool.QueryRow(ctx, `
		SELECT resolved FROM quarantines WHERE quarantine_id = @quarantine_id
	`, pgx.NamedArgs{"quarantine_id": quarantineID}).Scan(&resolved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoRows
		}
		return err
	}

	if resolved {
		return ErrResolved
	}

	args := pgx.NamedArgs{
		"quarantine_id":   quarantineID,
		"resolution_note": note,
	}

	_, err = s.pool.Exec(ctx, `
		UPDATE quarantines
		SET resolved = TRUE, resolved_at = CURRENT_TIMESTAMP, resolution_note = @resolution_note
		WHERE quarantine_id = @quarantine_id AND NOT resolved
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) QueryQuarantines(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Quarantine], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()

	query := fmt.Sprintf(`
		SELECT q.quarantine_id, q.alert_type_code, q.device_id, q.device_session_id, q.data_collector_id, q.alert_id, q.since, q.last_checked, q.resolved, q.resolved_at, q.resolution_note, count(*) OVER () AS count
		FROM quarantines q
		LEFT JOIN data_collectors dc ON dc.data_collector_id = q.data_collector_id
		WHERE %s
		ORDER BY q.since %s
		%s
	`, condition.QuarantineWhere(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Quarantine]{}, err
	}

	var quarantine_id, alert_type_code, data_collector_id, alert_id string
	var device_id, device_session_id, resolution_note *string
	var since, last_checked time.Time
	var resolved_at *time.Time
	var resolved bool
	var count int64

	quarantines := make([]types.Quarantine, 0)

	_, err = pgx.ForEachRow(rows, []any{&quarantine_id, &alert_type_code, &device_id, &device_session_id, &data_collector_id, &alert_id, &since, &last_checked, &resolved, &resolved_at, &resolution_note, &count}, func() error {
		q := types.Quarantine{
			ID:              quarantine_id,
			AlertTypeCode:   alert_type_code,
			DeviceID:        device_id,
			DeviceSessionID: device_session_id,
			DataCollectorID: data_collector_id,
			AlertID:         alert_id,
			Since:           since,
			LastChecked:     last_checked,
			Resolved:        resolved,
			ResolvedAt:      resolved_at,
		}
		if resolution_note != nil {
			q.ResolutionNote = *resolution_note
		}
		quarantines = append(quarantines, q)
		return nil
	})
	if err != nil {
		return types.Collection[types.Quarantine]{}, err
	}

	return types.Collection[types.Quarantine]{
		Data:       quarantines,
		Count:      uint64(len(quarantines)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}
