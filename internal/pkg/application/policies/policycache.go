package policies

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
)

var ErrNoActivePolicy = fmt.Errorf("no active policy selected")
var ErrAlertTypeNotFound = fmt.Errorf("alert type not found")

const (
	PolicyCreated string = "CREATED"
	PolicyUpdated string = "UPDATED"
	PolicyDeleted string = "DELETED"
)

// PolicyCache mirrors the persisted policy configuration in memory. It is
// read on the packet processing path and kept current by policy change
// events consumed off the message bus.
//
//go:generate moq -rm -out policycache_mock.go . PolicyCache
type PolicyCache interface {
	Load(ctx context.Context) error
	SelectActive(ctx context.Context, organizationID, dataCollectorID string)
	IsEnabled(ctx context.Context, alertTypeCode string) (bool, error)
	Parameters(ctx context.Context, alertTypeCode string) (map[string]any, error)
	Apply(ctx context.Context, event types.PolicyChanged) error

	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out policystorage_mock.go . PolicyStorage
type PolicyStorage interface {
	GetPolicies(ctx context.Context) ([]types.Policy, error)
	GetPolicy(ctx context.Context, policyID string) (types.Policy, error)
	AddPolicyItem(ctx context.Context, item types.PolicyItem) error
	SetPolicyItemParameters(ctx context.Context, policyItemID string, parameters map[string]any) error
	GetAlertType(ctx context.Context, code string) (types.AlertType, error)
}

type policyCache struct {
	storage   PolicyStorage
	messenger messaging.MsgContext

	mu       sync.RWMutex
	policies map[string]types.Policy
	order    []string
	activeID string
	activeDC string
}

func New(s PolicyStorage, m messaging.MsgContext) PolicyCache {
	return &policyCache{
		storage:   s,
		messenger: m,
		policies:  make(map[string]types.Policy),
	}
}

func (c *policyCache) RegisterTopicMessageHandler(ctx context.Context) error {
	return c.messenger.RegisterTopicMessageHandler("policies.policyChanged", NewPolicyChangedHandler(c))
}

func (c *policyCache) Load(ctx context.Context) error {
	policies, err := c.storage.GetPolicies(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.policies = make(map[string]types.Policy, len(policies))
	c.order = make([]string, 0, len(policies))

	for _, p := range policies {
		c.policies[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	return nil
}

func matchesOrganization(p types.Policy, organizationID string) bool {
	return p.OrganizationID == nil || *p.OrganizationID == organizationID
}

// SelectActive keeps a single memoized selection per (organization,
// collector) pair so that consecutive packets from the same source skip the
// full scan. A scan that matches nothing leaves the prior selection intact.
func (c *policyCache) SelectActive(ctx context.Context, organizationID, dataCollectorID string) {
	c.mu.RLock()
	if active, ok := c.policies[c.activeID]; ok && matchesOrganization(active, organizationID) && c.activeDC == dataCollectorID {
		c.mu.RUnlock()
		return
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if active, ok := c.policies[c.activeID]; ok && matchesOrganization(active, organizationID) && c.activeDC == dataCollectorID {
		return
	}

	for _, id := range c.order {
		p := c.policies[id]
		if matchesOrganization(p, organizationID) && slices.Contains(p.DataCollectorIDs, dataCollectorID) {
			c.activeID = p.ID
			c.activeDC = dataCollectorID
			return
		}
	}
}

// IsEnabled defaults to enabled when the active policy has no item for the
// given code, and fails closed when no policy is selected at all.
func (c *policyCache) IsEnabled(ctx context.Context, alertTypeCode string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active, ok := c.policies[c.activeID]
	if !ok {
		return false, ErrNoActivePolicy
	}

	for _, item := range active.Items {
		if item.AlertTypeCode == alertTypeCode {
			return item.Enabled, nil
		}
	}

	return true, nil
}

// Parameters merges the stored policy item parameters over the alert type's
// declared defaults. Stored values win; any default missing from the stored
// set is backfilled and persisted, so a second call returns the same mapping
// without writing again.
func (c *policyCache) Parameters(ctx context.Context, alertTypeCode string) (map[string]any, error) {
	c.mu.RLock()
	active, ok := c.policies[c.activeID]
	if !ok {
		c.mu.RUnlock()
		return map[string]any{}, ErrNoActivePolicy
	}

	policyID := active.ID

	var item *types.PolicyItem
	for i := range active.Items {
		if active.Items[i].AlertTypeCode == alertTypeCode {
			found := active.Items[i]
			item = &found
			break
		}
	}
	c.mu.RUnlock()

	alertType, err := c.storage.GetAlertType(ctx, alertTypeCode)
	if err != nil {
		return map[string]any{}, fmt.Errorf("%w: %s", ErrAlertTypeNotFound, alertTypeCode)
	}

	if item == nil {
		newItem := types.PolicyItem{
			ID:            uuid.NewString(),
			PolicyID:      policyID,
			AlertTypeCode: alertTypeCode,
			Enabled:       true,
			Parameters:    cloneParameters(alertType.Parameters),
		}

		err = c.storage.AddPolicyItem(ctx, newItem)
		if err != nil {
			return map[string]any{}, err
		}

		c.storeItem(policyID, newItem)

		return cloneParameters(newItem.Parameters), nil
	}

	merged := cloneParameters(item.Parameters)

	backfilled := false
	for name, def := range alertType.Parameters {
		if _, ok := merged[name]; !ok {
			merged[name] = def
			backfilled = true
		}
	}

	if backfilled {
		err = c.storage.SetPolicyItemParameters(ctx, item.ID, merged)
		if err != nil {
			return map[string]any{}, err
		}

		item.Parameters = cloneParameters(merged)
		c.storeItem(policyID, *item)
	}

	return merged, nil
}

// Apply is idempotent: reapplying a CREATED/UPDATED event replaces the same
// policy with the same state, and a DELETED event for an unknown policy id
// is a no-op.
func (c *policyCache) Apply(ctx context.Context, event types.PolicyChanged) error {
	policyID := event.Data.ID
	if policyID == "" {
		return fmt.Errorf("policy change event carries no policy id")
	}

	switch event.Type {
	case PolicyCreated, PolicyUpdated:
		p, err := c.storage.GetPolicy(ctx, policyID)
		if err != nil {
			return err
		}

		c.mu.Lock()
		if _, ok := c.policies[policyID]; !ok {
			c.order = append(c.order, policyID)
		}
		c.policies[policyID] = p
		c.mu.Unlock()
	case PolicyDeleted:
		c.mu.Lock()
		delete(c.policies, policyID)
		c.order = slices.DeleteFunc(c.order, func(id string) bool { return id == policyID })
		if c.activeID == policyID {
			c.activeID = ""
			c.activeDC = ""
		}
		c.mu.Unlock()
	default:
		return fmt.Errorf("unknown policy change event type %s", event.Type)
	}

	return nil
}

// storeItem writes an added or updated item back into the cached policy.
func (c *policyCache) storeItem(policyID string, item types.PolicyItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.policies[policyID]
	if !ok {
		return
	}

	for i := range p.Items {
		if p.Items[i].AlertTypeCode == item.AlertTypeCode {
			p.Items[i] = item
			c.policies[policyID] = p
			return
		}
	}

	p.Items = append(slices.Clone(p.Items), item)
	c.policies[policyID] = p
}

func cloneParameters(parameters map[string]any) map[string]any {
	clone := make(map[string]any, len(parameters))
	for k, v := range parameters {
		clone[k] = v
	}
	return clone
}
