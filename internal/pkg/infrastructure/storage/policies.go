package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/jackc/pgx/v5"
)

// GetPolicies returns every policy together with its items and the set of
// data collector ids it applies to.
func (s *Storage) GetPolicies(ctx context.Context) ([]types.Policy, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT policy_id, name, organization_id
		FROM policies
		ORDER BY created_on ASC, policy_id ASC
	`)
	if err != nil {
		return nil, err
	}

	var policy_id string
	var name, organization_id *string

	policies := make([]types.Policy, 0)

	_, err = pgx.ForEachRow(rows, []any{&policy_id, &name, &organization_id}, func() error {
		p := types.Policy{
			ID:             policy_id,
			OrganizationID: organization_id,
		}
		if name != nil {
			p.Name = *name
		}
		policies = append(policies, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range policies {
		policies[i].Items, err = s.getPolicyItems(ctx, policies[i].ID)
		if err != nil {
			return nil, err
		}

		policies[i].DataCollectorIDs, err = s.GetPolicyDataCollectors(ctx, policies[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return policies, nil
}

func (s *Storage) GetPolicy(ctx context.Context, policyID string) (types.Policy, error) {
	var policy_id string
	var name, organization_id *string

	err := s.pool.QueryRow(ctx, `
		SELECT policy_id, name, organization_id
		FROM policies
		WHERE policy_id = @policy_id
	`, pgx.NamedArgs{"policy_id": policyID}).Scan(&policy_id, &name, &organization_id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Policy{}, ErrNoRows
		}
		return types.Policy{}, err
	}

	p := types.Policy{
		ID:             policy_id,
		OrganizationID: organization_id,
	}
	if name != nil {
		p.Name = *name
	}

	p.Items, err = s.getPolicyItems(ctx, policyID)
	if err != nil {
		return types.Policy{}, err
	}

	p.DataCollectorIDs, err = s.GetPolicyDataCollectors(ctx, policyID)
	if err != nil {
		return types.Policy{}, err
	}

	return p, nil
}

func (s *Storage) GetPolicyDataCollectors(ctx context.Context, policyID string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT data_collector_id
		FROM policy_data_collectors
		WHERE policy_id = @policy_id
		ORDER BY data_collector_id ASC
	`, pgx.NamedArgs{"policy_id": policyID})
	if err != nil {
		return nil, err
	}

	var data_collector_id string

	ids := make([]string, 0)

	_, err = pgx.ForEachRow(rows, []any{&data_collector_id}, func() error {
		ids = append(ids, data_collector_id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (s *Storage) getPolicyItems(ctx context.Context, policyID string) ([]types.PolicyItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT policy_item_id, policy_id, alert_type_code, enabled, parameters
		FROM policy_items
		WHERE policy_id = @policy_id
		ORDER BY alert_type_code ASC
	`, pgx.NamedArgs{"policy_id": policyID})
	if err != nil {
		return nil, err
	}

	var policy_item_id, policy_id, alert_type_code string
	var enabled bool
	var parameters []byte

	items := make([]types.PolicyItem, 0)

	_, err = pgx.ForEachRow(rows, []any{&policy_item_id, &policy_id, &alert_type_code, &enabled, &parameters}, func() error {
		item := types.PolicyItem{
			ID:            policy_item_id,
			PolicyID:      policy_id,
			AlertTypeCode: alert_type_code,
			Enabled:       enabled,
		}

		if len(parameters) > 0 {
			err := json.Unmarshal(parameters, &item.Parameters)
			if err != nil {
				return err
			}
		}

		items = append(items, item)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Storage) AddPolicyItem(ctx context.Context, item types.PolicyItem) error {
	if item.ID == "" || item.PolicyID == "" {
		return ErrNoID
	}

	parameters, err := json.Marshal(item.Parameters)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	args := pgx.NamedArgs{
		"policy_item_id":  item.ID,
		"policy_id":       item.PolicyID,
		"alert_type_code": item.AlertTypeCode,
		"enabled":         item.Enabled,
		"parameters":      parameters,
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO policy_items (policy_item_id, policy_id, alert_type_code, enabled, parameters)
		VALUES (@policy_item_id, @policy_id, @alert_type_code, @enabled, @parameters)
		ON CONFLICT (policy_id, alert_type_code) DO NOTHING
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) SetPolicyItemParameters(ctx context.Context, policyItemID string, parameters map[string]any) error {
	b, err := json.Marshal(parameters)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	args := pgx.NamedArgs{
		"policy_item_id": policyItemID,
		"parameters":     b,
	}

	_, err = s.pool.Exec(ctx, `
		UPDATE policy_items
		SET parameters = @parameters, modified_on = CURRENT_TIMESTAMP
		WHERE policy_item_id = @policy_item_id
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}
