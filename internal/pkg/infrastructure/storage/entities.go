package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetDeviceByEUI(ctx context.Context, devEUI, dataCollectorID string) (types.Device, error) {
	args := pgx.NamedArgs{
		"dev_eui":           devEUI,
		"data_collector_id": dataCollectorID,
	}

	var d types.Device
	var dev_eui, join_eui, name, vendor, app_name *string

	err := s.pool.QueryRow(ctx, `
		SELECT device_id, dev_eui, join_eui, name, vendor, app_name, data_collector_id
		FROM devices
		WHERE dev_eui = @dev_eui AND data_collector_id = @data_collector_id
	`, args).Scan(&d.ID, &dev_eui, &join_eui, &name, &vendor, &app_name, &d.DataCollectorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	assign(&d.DevEUI, dev_eui)
	assign(&d.JoinEUI, join_eui)
	assign(&d.Name, name)
	assign(&d.Vendor, vendor)
	assign(&d.AppName, app_name)

	return d, nil
}

func (s *Storage) GetDeviceByID(ctx context.Context, deviceID string) (types.Device, error) {
	var d types.Device
	var dev_eui, join_eui, name, vendor, app_name *string

	err := s.pool.QueryRow(ctx, `
		SELECT device_id, dev_eui, join_eui, name, vendor, app_name, data_collector_id
		FROM devices
		WHERE device_id = @device_id
	`, pgx.NamedArgs{"device_id": deviceID}).Scan(&d.ID, &dev_eui, &join_eui, &name, &vendor, &app_name, &d.DataCollectorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	assign(&d.DevEUI, dev_eui)
	assign(&d.JoinEUI, join_eui)
	assign(&d.Name, name)
	assign(&d.Vendor, vendor)
	assign(&d.AppName, app_name)

	return d, nil
}

func (s *Storage) GetDeviceSessionByDevAddr(ctx context.Context, devAddr, dataCollectorID string) (types.DeviceSession, error) {
	args := pgx.NamedArgs{
		"dev_addr":          devAddr,
		"data_collector_id": dataCollectorID,
	}

	var ds types.DeviceSession

	err := s.pool.QueryRow(ctx, `
		SELECT device_session_id, dev_addr, device_id, data_collector_id
		FROM device_sessions
		WHERE dev_addr = @dev_addr AND data_collector_id = @data_collector_id
	`, args).Scan(&ds.ID, &ds.DevAddr, &ds.DeviceID, &ds.DataCollectorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DeviceSession{}, ErrNoRows
		}
		return types.DeviceSession{}, err
	}

	return ds, nil
}

func (s *Storage) GetGatewayByHexID(ctx context.Context, gwHexID, dataCollectorID string) (types.Gateway, error) {
	args := pgx.NamedArgs{
		"gw_hex_id":         gwHexID,
		"data_collector_id": dataCollectorID,
	}

	var g types.Gateway
	var name, vendor *string

	err := s.pool.QueryRow(ctx, `
		SELECT gateway_id, gw_hex_id, name, vendor, data_collector_id
		FROM gateways
		WHERE gw_hex_id = @gw_hex_id AND data_collector_id = @data_collector_id
	`, args).Scan(&g.ID, &g.GwHexID, &name, &vendor, &g.DataCollectorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Gateway{}, ErrNoRows
		}
		return types.Gateway{}, err
	}

	assign(&g.Name, name)
	assign(&g.Vendor, vendor)

	return g, nil
}

func (s *Storage) GetDataCollector(ctx context.Context, dataCollectorID string) (types.DataCollector, error) {
	var dc types.DataCollector
	var organization_id *string

	err := s.pool.QueryRow(ctx, `
		SELECT data_collector_id, name, organization_id
		FROM data_collectors
		WHERE data_collector_id = @data_collector_id
	`, pgx.NamedArgs{"data_collector_id": dataCollectorID}).Scan(&dc.ID, &dc.Name, &organization_id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DataCollector{}, ErrNoRows
		}
		return types.DataCollector{}, err
	}

	assign(&dc.OrganizationID, organization_id)

	return dc, nil
}

func (s *Storage) GetAlertType(ctx context.Context, code string) (types.AlertType, error) {
	var at types.AlertType
	var parameters []byte

	err := s.pool.QueryRow(ctx, `
		SELECT code, message, parameters
		FROM alert_types
		WHERE code = @code
	`, pgx.NamedArgs{"code": code}).Scan(&at.Code, &at.Message, &parameters)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.AlertType{}, ErrNoRows
		}
		return types.AlertType{}, err
	}

	if len(parameters) > 0 {
		err = json.Unmarshal(parameters, &at.Parameters)
		if err != nil {
			return types.AlertType{}, err
		}
	}

	return at, nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
