package types

import (
	"time"
)

// Packet is one observed LoRaWAN network event, as reported by an analyzer.
type Packet struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Gateway         string    `json:"gateway,omitempty"`
	DevEUI          string    `json:"devEUI,omitempty"`
	DevAddr         string    `json:"devAddr,omitempty"`
	DataCollectorID string    `json:"dataCollectorID"`
	OrganizationID  string    `json:"organizationID,omitempty"`
}

type Device struct {
	ID              string `json:"id"`
	DevEUI          string `json:"devEUI,omitempty"`
	JoinEUI         string `json:"joinEUI,omitempty"`
	Name            string `json:"name,omitempty"`
	Vendor          string `json:"vendor,omitempty"`
	AppName         string `json:"appName,omitempty"`
	DataCollectorID string `json:"dataCollectorID"`
}

type DeviceSession struct {
	ID              string  `json:"id"`
	DevAddr         string  `json:"devAddr"`
	DeviceID        *string `json:"deviceID,omitempty"`
	DataCollectorID string  `json:"dataCollectorID"`
}

type Gateway struct {
	ID              string `json:"id"`
	GwHexID         string `json:"gwHexID"`
	Name            string `json:"name,omitempty"`
	Vendor          string `json:"vendor,omitempty"`
	DataCollectorID string `json:"dataCollectorID"`
}

type DataCollector struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OrganizationID string `json:"organizationID,omitempty"`
}

// AlertType is a fixed anomaly classification. Parameters maps each
// parameter name to its default value.
type AlertType struct {
	Code       string         `json:"code" yaml:"code"`
	Message    string         `json:"message" yaml:"message"`
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters"`
}

type Policy struct {
	ID               string       `json:"id"`
	Name             string       `json:"name,omitempty"`
	OrganizationID   *string      `json:"organizationID,omitempty"`
	DataCollectorIDs []string     `json:"dataCollectorIDs,omitempty"`
	Items            []PolicyItem `json:"items,omitempty"`
}

type PolicyItem struct {
	ID            string         `json:"id"`
	PolicyID      string         `json:"policyID"`
	AlertTypeCode string         `json:"alertTypeCode"`
	Enabled       bool           `json:"enabled"`
	Parameters    map[string]any `json:"parameters,omitempty"`
}

type Alert struct {
	ID              string         `json:"id"`
	AlertTypeCode   string         `json:"alertType"`
	DeviceID        *string        `json:"deviceID,omitempty"`
	DeviceSessionID *string        `json:"deviceSessionID,omitempty"`
	GatewayID       *string        `json:"gatewayID,omitempty"`
	DeviceAuthID    *string        `json:"deviceAuthID,omitempty"`
	DataCollectorID string         `json:"dataCollectorID"`
	PacketID        string         `json:"packetID"`
	Parameters      map[string]any `json:"parameters,omitempty"`
	Visible         bool           `json:"visible"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// Quarantine is a suppression window for repeated alerts of the same type
// for the same device/session/collector. At most one unresolved row may
// exist per such key.
type Quarantine struct {
	ID              string     `json:"id"`
	AlertTypeCode   string     `json:"alertType"`
	DeviceID        *string    `json:"deviceID,omitempty"`
	DeviceSessionID *string    `json:"deviceSessionID,omitempty"`
	DataCollectorID string     `json:"dataCollectorID"`
	AlertID         string     `json:"alertID"`
	Since           time.Time  `json:"since"`
	LastChecked     time.Time  `json:"lastChecked"`
	Resolved        bool       `json:"resolved"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ResolutionNote  string     `json:"resolutionNote,omitempty"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
