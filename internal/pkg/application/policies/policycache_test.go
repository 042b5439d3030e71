package policies

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func strptr(s string) *string {
	return &s
}

func testPolicies() []types.Policy {
	return []types.Policy{
		{
			ID:               "p1",
			Name:             "default",
			DataCollectorIDs: []string{"c1"},
			Items: []types.PolicyItem{
				{ID: "i1", PolicyID: "p1", AlertTypeCode: "LAF-010", Enabled: false},
				{ID: "i2", PolicyID: "p1", AlertTypeCode: "LAF-002", Enabled: true, Parameters: map[string]any{"threshold": 5}},
			},
		},
		{
			ID:               "p2",
			Name:             "org scoped",
			OrganizationID:   strptr("org-2"),
			DataCollectorIDs: []string{"c2"},
		},
	}
}

func testSetup(t *testing.T) (context.Context, *is.I, *PolicyStorageMock, PolicyCache) {
	is := is.New(t)
	ctx := context.Background()

	s := &PolicyStorageMock{
		GetPoliciesFunc: func(ctx context.Context) ([]types.Policy, error) {
			return testPolicies(), nil
		},
		GetAlertTypeFunc: func(ctx context.Context, code string) (types.AlertType, error) {
			return types.AlertType{
				Code:       code,
				Message:    "message",
				Parameters: map[string]any{"threshold": 1, "window": 10},
			}, nil
		},
		AddPolicyItemFunc: func(ctx context.Context, item types.PolicyItem) error {
			return nil
		},
		SetPolicyItemParametersFunc: func(ctx context.Context, policyItemID string, parameters map[string]any) error {
			return nil
		},
	}

	cache := New(s, &messaging.MsgContextMock{})
	is.NoErr(cache.Load(ctx))

	return ctx, is, s, cache
}

func TestSelectActiveMatchesCollector(t *testing.T) {
	ctx, is, _, cache := testSetup(t)

	cache.SelectActive(ctx, "any-org", "c1")

	enabled, err := cache.IsEnabled(ctx, "LAF-010")
	is.NoErr(err)
	is.True(!enabled)
}

func TestIsEnabledDefaultsToEnabledForUnknownCode(t *testing.T) {
	ctx, is, _, cache := testSetup(t)

	cache.SelectActive(ctx, "any-org", "c1")

	enabled, err := cache.IsEnabled(ctx, "LAF-999")
	is.NoErr(err)
	is.True(enabled)
}

func TestIsEnabledFailsClosedWithoutActivePolicy(t *testing.T) {
	ctx, is, _, cache := testSetup(t)

	enabled, err := cache.IsEnabled(ctx, "LAF-010")
	is.True(err != nil)
	is.Equal(ErrNoActivePolicy, err)
	is.True(!enabled)
}

func TestSelectActiveKeepsPriorSelectionOnMiss(t *testing.T) {
	ctx, is, _, cache := testSetup(t)

	cache.SelectActive(ctx, "any-org", "c1")
	cache.SelectActive(ctx, "any-org", "unknown-collector")

	enabled, err := cache.IsEnabled(ctx, "LAF-010")
	is.NoErr(err)
	is.True(!enabled)
}

func TestSelectActiveHonorsOrganizationScope(t *testing.T) {
	ctx, is, _, cache := testSetup(t)

	// p2 is bound to org-2, so a packet from another organization on c2
	// must not select it
	cache.SelectActive(ctx, "org-1", "c2")
	_, err := cache.IsEnabled(ctx, "LAF-010")
	is.Equal(ErrNoActivePolicy, err)

	cache.SelectActive(ctx, "org-2", "c2")
	enabled, err := cache.IsEnabled(ctx, "LAF-010")
	is.NoErr(err)
	is.True(enabled)
}

func TestParametersMergesStoredOverDefaults(t *testing.T) {
	ctx, is, s, cache := testSetup(t)

	cache.SelectActive(ctx, "any-org", "c1")

	parameters, err := cache.Parameters(ctx, "LAF-002")
	is.NoErr(err)
	is.Equal(5, parameters["threshold"])
	is.Equal(10, parameters["window"])

	is.Equal(1, len(s.SetPolicyItemParametersCalls()))
	is.Equal("i2", s.SetPolicyItemParametersCalls()[0].PolicyItemID)
}

func TestParametersSecondCallDoesNotPersistAgain(t *testing.T) {
	ctx, is, s, cache := testSetup(t)

	cache.SelectActive(ctx, "any-org", "c1")

	first, err := cache.Parameters(ctx, "LAF-002")
	is.NoErr(err)

	second, err := cache.Parameters(ctx, "LAF-002")
	is.NoErr(err)

	is.Equal(first, second)
	is.Equal(1, len(s.SetPolicyItemParametersCalls()))
}

func TestParametersCreatesMissingItemWithDefaults(t *testing.T) {
	ctx, is, s, cache := testSetup(t)

	cache.SelectActive(ctx, "any-org", "c1")

	parameters, err := cache.Parameters(ctx, "LAF-007")
	is.NoErr(err)
	is.Equal(1, parameters["threshold"])
	is.Equal(10, parameters["window"])

	is.Equal(1, len(s.AddPolicyItemCalls()))
	added := s.AddPolicyItemCalls()[0].Item
	is.Equal("p1", added.PolicyID)
	is.Equal("LAF-007", added.AlertTypeCode)
	is.True(added.Enabled)

	_, err = cache.Parameters(ctx, "LAF-007")
	is.NoErr(err)
	is.Equal(1, len(s.AddPolicyItemCalls()))
}

func TestApplyDeletedUnknownPolicyIsNoOp(t *testing.T) {
	ctx, is, _, cache := testSetup(t)

	err := cache.Apply(ctx, types.PolicyChanged{Type: PolicyDeleted, Data: types.PolicyChangedData{ID: "no-such-policy"}})
	is.NoErr(err)

	cache.SelectActive(ctx, "any-org", "c1")
	enabled, err := cache.IsEnabled(ctx, "LAF-010")
	is.NoErr(err)
	is.True(!enabled)
}

func TestApplyDeletedClearsActiveSelection(t *testing.T) {
	ctx, is, _, cache := testSetup(t)

	cache.SelectActive(ctx, "any-org", "c1")

	err := cache.Apply(ctx, types.PolicyChanged{Type: PolicyDeleted, Data: types.PolicyChangedData{ID: "p1"}})
	is.NoErr(err)

	_, err = cache.IsEnabled(ctx, "LAF-010")
	is.Equal(ErrNoActivePolicy, err)
}

func TestApplyUpdatedReplacesPolicy(t *testing.T) {
	ctx, is, s, cache := testSetup(t)

	s.GetPolicyFunc = func(ctx context.Context, policyID string) (types.Policy, error) {
		return types.Policy{
			ID:               "p1",
			Name:             "default",
			DataCollectorIDs: []string{"c1"},
			Items: []types.PolicyItem{
				{ID: "i1", PolicyID: "p1", AlertTypeCode: "LAF-010", Enabled: true},
			},
		}, nil
	}

	cache.SelectActive(ctx, "any-org", "c1")

	err := cache.Apply(ctx, types.PolicyChanged{Type: PolicyUpdated, Data: types.PolicyChangedData{ID: "p1"}})
	is.NoErr(err)

	enabled, err := cache.IsEnabled(ctx, "LAF-010")
	is.NoErr(err)
	is.True(enabled)
}

func TestApplyCreatedIsIdempotent(t *testing.T) {
	ctx, is, s, cache := testSetup(t)

	s.GetPolicyFunc = func(ctx context.Context, policyID string) (types.Policy, error) {
		return types.Policy{ID: "p3", DataCollectorIDs: []string{"c3"}}, nil
	}

	event := types.PolicyChanged{Type: PolicyCreated, Data: types.PolicyChangedData{ID: "p3"}}
	is.NoErr(cache.Apply(ctx, event))
	is.NoErr(cache.Apply(ctx, event))

	cache.SelectActive(ctx, "any-org", "c3")
	enabled, err := cache.IsEnabled(ctx, "LAF-001")
	is.NoErr(err)
	is.True(enabled)
}

func TestApplyRejectsEventWithoutPolicyID(t *testing.T) {
	ctx, is, _, cache := testSetup(t)

	err := cache.Apply(ctx, types.PolicyChanged{Type: PolicyCreated})
	is.True(err != nil)
}

func TestPolicyChangedHandler(t *testing.T) {
	ctx, is, s, cache := testSetup(t)
	log := slog.Default()

	s.GetPolicyFunc = func(ctx context.Context, policyID string) (types.Policy, error) {
		return types.Policy{ID: policyID, DataCollectorIDs: []string{"c4"}}, nil
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(types.PolicyChanged{
				Type: PolicyCreated,
				Data: types.PolicyChangedData{ID: "p4"},
			})
			return b
		},
		TopicNameFunc: func() string {
			return "policies.policyChanged"
		},
	}

	handler := NewPolicyChangedHandler(cache)
	handler(ctx, msg, log)

	is.Equal(1, len(s.GetPolicyCalls()))
	is.Equal("p4", s.GetPolicyCalls()[0].PolicyID)
}
