package types

import (
	"encoding/json"
	"time"
)

// AlertCreated is published whenever a new alert becomes visible.
type AlertCreated struct {
	Event           string `json:"event"`
	DataCollectorID string `json:"data_collector_id"`
	OrganizationID  string `json:"organization_id,omitempty"`
	AlertID         string `json:"alert_id"`
	AlertType       string `json:"alert_type"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

// PolicyChanged mirrors the change feed emitted by the policy management
// service. Type is one of CREATED, UPDATED or DELETED.
type PolicyChanged struct {
	Type string            `json:"type"`
	Data PolicyChangedData `json:"data"`
}

type PolicyChangedData struct {
	ID string `json:"id"`
}

func (p *PolicyChanged) ContentType() string {
	return "application/json"
}
func (p *PolicyChanged) TopicName() string {
	return "policies.policyChanged"
}
func (p *PolicyChanged) Body() []byte {
	b, _ := json.Marshal(p)
	return b
}

// PacketAnomaly is the finding an analyzer reports when a packet matches
// one of its anomaly rules.
type PacketAnomaly struct {
	AlertType    string         `json:"alertType"`
	Packet       Packet         `json:"packet"`
	DeviceAuthID *string        `json:"deviceAuthID,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}

func (p *PacketAnomaly) ContentType() string {
	return "application/json"
}
func (p *PacketAnomaly) TopicName() string {
	return "alerts.packetAnomaly"
}
func (p *PacketAnomaly) Body() []byte {
	b, _ := json.Marshal(p)
	return b
}
