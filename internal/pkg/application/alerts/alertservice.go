package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// quarantinedAlertTypes is the fixed set of alert types that are subject to
// deduplication while a prior occurrence remains unresolved.
var quarantinedAlertTypes = []string{"LAF-002", "LAF-006", "LAF-007", "LAF-009"}

var ErrAlertNotFound = fmt.Errorf("alert not found")
var ErrQuarantineNotFound = fmt.Errorf("quarantine not found")

// Emission failures are wrapped in one of these so that callers can tell a
// policy lookup problem from a failed write or a failed notification.
var (
	ErrPolicyCache  = errors.New("policy cache failure")
	ErrPersistence  = errors.New("could not persist alert")
	ErrNotification = errors.New("could not publish alert notification")
)

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Emit(ctx context.Context, alertTypeCode string, packet types.Packet, opts ...EmitOption) error
	RenderMessage(ctx context.Context, alert types.Alert) (string, error)

	GetByID(ctx context.Context, alertID string, organizations []string) (types.Alert, error)
	Query(ctx context.Context, params map[string][]string, organizations []string) (types.Collection[types.Alert], error)

	Quarantines(ctx context.Context, params map[string][]string, organizations []string) (types.Collection[types.Quarantine], error)
	ResolveQuarantine(ctx context.Context, quarantineID, note string, organizations []string) error

	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	AddAlert(ctx context.Context, alert types.Alert) error
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)

	GetDeviceByEUI(ctx context.Context, devEUI, dataCollectorID string) (types.Device, error)
	GetDeviceByID(ctx context.Context, deviceID string) (types.Device, error)
	GetDeviceSessionByDevAddr(ctx context.Context, devAddr, dataCollectorID string) (types.DeviceSession, error)
	GetGatewayByHexID(ctx context.Context, gwHexID, dataCollectorID string) (types.Gateway, error)
	GetDataCollector(ctx context.Context, dataCollectorID string) (types.DataCollector, error)
	GetAlertType(ctx context.Context, code string) (types.AlertType, error)

	GetOpenQuarantine(ctx context.Context, alertTypeCode string, deviceID, deviceSessionID *string, dataCollectorID string) (types.Quarantine, error)
	AddQuarantine(ctx context.Context, q types.Quarantine) error
	RefreshQuarantine(ctx context.Context, quarantineID, alertID string) error
	ResolveQuarantine(ctx context.Context, quarantineID, note string) error
	QueryQuarantines(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Quarantine], error)
}

// PolicyChecker is the slice of the policy cache the decision engine needs.
//
//go:generate moq -rm -out policychecker_mock.go . PolicyChecker
type PolicyChecker interface {
	SelectActive(ctx context.Context, organizationID, dataCollectorID string)
	IsEnabled(ctx context.Context, alertTypeCode string) (bool, error)
}

type alertSvc struct {
	storage   AlertStorage
	policies  PolicyChecker
	messenger messaging.MsgContext

	quarantineLocks *keyedMutex
}

func New(s AlertStorage, p PolicyChecker, m messaging.MsgContext) AlertService {
	return &alertSvc{
		storage:         s,
		policies:        p,
		messenger:       m,
		quarantineLocks: newKeyedMutex(),
	}
}

func (svc *alertSvc) RegisterTopicMessageHandler(ctx context.Context) error {
	return svc.messenger.RegisterTopicMessageHandler("alerts.packetAnomaly", NewPacketAnomalyHandler(svc))
}

type emission struct {
	device       *types.Device
	session      *types.DeviceSession
	gateway      *types.Gateway
	deviceAuthID *string
	parameters   map[string]any
}

type EmitOption func(*emission)

func WithDevice(d types.Device) EmitOption {
	return func(e *emission) { e.device = &d }
}

func WithDeviceSession(ds types.DeviceSession) EmitOption {
	return func(e *emission) { e.session = &ds }
}

func WithGateway(g types.Gateway) EmitOption {
	return func(e *emission) { e.gateway = &g }
}

func WithDeviceAuthID(id string) EmitOption {
	return func(e *emission) { e.deviceAuthID = &id }
}

func WithParameters(parameters map[string]any) EmitOption {
	return func(e *emission) { e.parameters = parameters }
}

func isQuarantined(alertTypeCode string) bool {
	for _, code := range quarantinedAlertTypes {
		if code == alertTypeCode {
			return true
		}
	}
	return false
}

// Emit evaluates one anomaly finding against the active policy, persists the
// resulting alert and publishes a notification unless an open quarantine
// suppresses it. A disabled alert type produces nothing and is not an error.
func (svc *alertSvc) Emit(ctx context.Context, alertTypeCode string, packet types.Packet, opts ...EmitOption) error {
	log := logging.GetFromContext(ctx)

	e := &emission{}
	for _, opt := range opts {
		opt(e)
	}

	svc.policies.SelectActive(ctx, packet.OrganizationID, packet.DataCollectorID)

	enabled, err := svc.policies.IsEnabled(ctx, alertTypeCode)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPolicyCache, err.Error())
	}
	if !enabled {
		log.Debug("alert type disabled by policy", "alert_type", alertTypeCode)
		return nil
	}

	svc.resolveContext(ctx, packet, e)

	now := time.Now().UTC()
	parameters := svc.assembleParameters(packet, e, now)

	alert := types.Alert{
		ID:              uuid.NewString(),
		AlertTypeCode:   alertTypeCode,
		DeviceAuthID:    e.deviceAuthID,
		DataCollectorID: packet.DataCollectorID,
		PacketID:        packet.ID,
		Parameters:      parameters,
		Visible:         true,
		CreatedAt:       now,
	}
	if e.device != nil {
		alert.DeviceID = &e.device.ID
	}
	if e.session != nil {
		alert.DeviceSessionID = &e.session.ID
	}
	if e.gateway != nil {
		alert.GatewayID = &e.gateway.ID
	}

	if !isQuarantined(alertTypeCode) {
		err = svc.storage.AddAlert(ctx, alert)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrPersistence, err.Error())
		}

		return svc.notify(ctx, alert, packet)
	}

	// The check-then-act sequence below must not interleave for two alerts
	// with the same quarantine key, or both would be observed as visible.
	key := quarantineKey(alertTypeCode, alert.DeviceID, alert.DeviceSessionID, packet.DataCollectorID)
	svc.quarantineLocks.Lock(key)
	defer svc.quarantineLocks.Unlock(key)

	var open *types.Quarantine

	existing, err := svc.storage.GetOpenQuarantine(ctx, alertTypeCode, alert.DeviceID, alert.DeviceSessionID, packet.DataCollectorID)
	if err == nil {
		open = &existing
	} else if !errors.Is(err, storage.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrPersistence, err.Error())
	}

	alert.Visible = open == nil

	err = svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersistence, err.Error())
	}

	var notifyErr error
	if alert.Visible {
		notifyErr = svc.notify(ctx, alert, packet)
	}

	err = svc.putOnQuarantine(ctx, alert, open, now)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersistence, err.Error())
	}

	return notifyErr
}

func (svc *alertSvc) notify(ctx context.Context, alert types.Alert, packet types.Packet) error {
	err := svc.messenger.PublishOnTopic(ctx, &types.AlertCreated{
		Event:           "NEW",
		DataCollectorID: packet.DataCollectorID,
		OrganizationID:  packet.OrganizationID,
		AlertID:         alert.ID,
		AlertType:       alert.AlertTypeCode,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotification, err.Error())
	}

	return nil
}

// resolveContext guesses the gateway, device and session a packet belongs
// to. Lookups are best effort and a fully unresolved context is valid.
func (svc *alertSvc) resolveContext(ctx context.Context, packet types.Packet, e *emission) {
	log := logging.GetFromContext(ctx)

	if e.gateway == nil && packet.Gateway != "" {
		gw, err := svc.storage.GetGatewayByHexID(ctx, packet.Gateway, packet.DataCollectorID)
		if err == nil {
			e.gateway = &gw
		} else if !errors.Is(err, storage.ErrNoRows) {
			log.Warn("gateway lookup failed", "gw_hex_id", packet.Gateway, "err", err.Error())
		}
	}

	if e.device == nil && packet.DevEUI != "" {
		d, err := svc.storage.GetDeviceByEUI(ctx, packet.DevEUI, packet.DataCollectorID)
		if err == nil {
			e.device = &d
		} else if !errors.Is(err, storage.ErrNoRows) {
			log.Warn("device lookup failed", "dev_eui", packet.DevEUI, "err", err.Error())
		}
	}

	if e.session == nil && e.gateway != nil && packet.DevAddr != "" {
		ds, err := svc.storage.GetDeviceSessionByDevAddr(ctx, packet.DevAddr, packet.DataCollectorID)
		if err == nil {
			e.session = &ds
		} else if !errors.Is(err, storage.ErrNoRows) {
			log.Warn("device session lookup failed", "dev_addr", packet.DevAddr, "err", err.Error())
		}
	}

	if e.device == nil && e.session != nil && e.session.DeviceID != nil {
		d, err := svc.storage.GetDeviceByID(ctx, *e.session.DeviceID)
		if err == nil {
			e.device = &d
		} else if !errors.Is(err, storage.ErrNoRows) {
			log.Warn("device lookup via session failed", "device_id", *e.session.DeviceID, "err", err.Error())
		}
	}
}

const timestampLayout = "2006-01-02 15:04:05"

// assembleParameters collects what the packet and its resolved context tell
// us about the alert. Policy parameters stay out of the persisted map, they
// configure the decision, not the alert.
func (svc *alertSvc) assembleParameters(packet types.Packet, e *emission, now time.Time) map[string]any {
	parameters := map[string]any{}

	parameters["packet_id"] = packet.ID
	parameters["packet_date"] = packet.Date.UTC().Format(timestampLayout)
	parameters["created_at"] = now.Format(timestampLayout)

	if e.device != nil {
		setIfNotEmpty(parameters, "dev_eui", e.device.DevEUI)
		setIfNotEmpty(parameters, "dev_name", e.device.Name)
		setIfNotEmpty(parameters, "dev_vendor", e.device.Vendor)
		setIfNotEmpty(parameters, "app_name", e.device.AppName)
		setIfNotEmpty(parameters, "join_eui", e.device.JoinEUI)
	}

	if e.session != nil {
		setIfNotEmpty(parameters, "dev_addr", e.session.DevAddr)
	}

	if e.gateway != nil {
		setIfNotEmpty(parameters, "gateway", e.gateway.GwHexID)
		setIfNotEmpty(parameters, "gw_name", e.gateway.Name)
		setIfNotEmpty(parameters, "gw_vendor", e.gateway.Vendor)
	}

	for name, value := range e.parameters {
		parameters[name] = value
	}

	return parameters
}

func setIfNotEmpty(parameters map[string]any, name, value string) {
	if value != "" {
		parameters[name] = value
	}
}

// putOnQuarantine opens a new suppression window, or refreshes the existing
// one with a reference to the suppressed alert. Closing a window is left to
// the external resolution flow.
func (svc *alertSvc) putOnQuarantine(ctx context.Context, alert types.Alert, open *types.Quarantine, now time.Time) error {
	if open != nil {
		return svc.storage.RefreshQuarantine(ctx, open.ID, alert.ID)
	}

	return svc.storage.AddQuarantine(ctx, types.Quarantine{
		ID:              uuid.NewString(),
		AlertTypeCode:   alert.AlertTypeCode,
		DeviceID:        alert.DeviceID,
		DeviceSessionID: alert.DeviceSessionID,
		DataCollectorID: alert.DataCollectorID,
		AlertID:         alert.ID,
		Since:           now,
	})
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID string, organizations []string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithOrganizations(organizations))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc *alertSvc) Query(ctx context.Context, params map[string][]string, organizations []string) (types.Collection[types.Alert], error) {
	conditions := storage.ParseConditions(ctx, params)
	conditions = append(conditions, storage.WithOrganizations(organizations))

	return svc.storage.QueryAlerts(ctx, conditions...)
}

func (svc *alertSvc) Quarantines(ctx context.Context, params map[string][]string, organizations []string) (types.Collection[types.Quarantine], error) {
	conditions := storage.ParseConditions(ctx, params)
	conditions = append(conditions, storage.WithOrganizations(organizations))

	return svc.storage.QueryQuarantines(ctx, conditions...)
}

func (svc *alertSvc) ResolveQuarantine(ctx context.Context, quarantineID, note string, organizations []string) error {
	// A quarantine outside the caller's organizations is indistinguishable
	// from one that does not exist.
	visible, err := svc.storage.QueryQuarantines(ctx, storage.WithQuarantineID(quarantineID), storage.WithOrganizations(organizations))
	if err != nil {
		return err
	}
	if visible.TotalCount == 0 {
		return ErrQuarantineNotFound
	}

	err = svc.storage.ResolveQuarantine(ctx, quarantineID, note)
	if err != nil {
		if errors.Is(err, storage.ErrResolved) {
			return nil
		}
		if errors.Is(err, storage.ErrNoRows) {
			return ErrQuarantineNotFound
		}
		return err
	}

	return nil
}
