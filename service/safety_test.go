package service

import (
	"testing"

	"smartdesk/model"

	"github.com/stretchr/testify/assert"
)

func testCatalog() model.RunbookCatalog {
	return model.RunbookCatalog{
		"check_account_status": {RiskLevel: model.RiskLow},
		"reset_password":       {RiskLevel: model.RiskMedium},
		"wipe_device":          {RiskLevel: model.RiskHigh},
	}
}

func knownUserContext() *model.EnrichedContext {
	return &model.EnrichedContext{
		User:   &model.UserProfile{ID: "u-1", Name: "Test User"},
		Intent: model.IntentResult{Intent: "account_access_issue"},
	}
}

func planOf(ids ...string) model.PlanResult {
	actions := make([]model.PlanAction, 0, len(ids))
	for _, id := range ids {
		actions = append(actions, model.PlanAction{RunbookID: id, Inputs: map[string]any{}})
	}
	return model.PlanResult{Actions: actions}
}

func TestSafetyBlocksUnknownUser(t *testing.T) {
	safety := NewSafetyService(testCatalog())

	for _, enriched := range []*model.EnrichedContext{
		{User: nil},
		{User: &model.UserProfile{}},
	} {
		decision := safety.Evaluate(planOf("check_account_status"), enriched)
		assert.True(t, decision.Block)
		assert.Equal(t, "Unknown user", decision.Reason)
	}
}

func TestSafetyBlockIsIdempotent(t *testing.T) {
	safety := NewSafetyService(testCatalog())
	enriched := &model.EnrichedContext{User: nil}
	plan := planOf("check_account_status")

	first := safety.Evaluate(plan, enriched)
	second := safety.Evaluate(plan, enriched)
	assert.Equal(t, first, second)
}

func TestSafetyBlocksEmptyPlan(t *testing.T) {
	safety := NewSafetyService(testCatalog())

	decision := safety.Evaluate(model.PlanResult{}, knownUserContext())
	assert.True(t, decision.Block)
	assert.Equal(t, "No actions in plan", decision.Reason)
}

func TestSafetyBlocksUnregisteredRunbook(t *testing.T) {
	safety := NewSafetyService(testCatalog())

	decision := safety.Evaluate(planOf("check_account_status", "delete_account"), knownUserContext())
	assert.True(t, decision.Block)
	assert.Contains(t, decision.Reason, "delete_account")
}

func TestSafetyBlocksHighRiskRunbook(t *testing.T) {
	safety := NewSafetyService(testCatalog())

	decision := safety.Evaluate(planOf("check_account_status", "wipe_device"), knownUserContext())
	assert.True(t, decision.Block)
	assert.Contains(t, decision.Reason, "wipe_device")
	assert.Contains(t, decision.Reason, "high-risk")
}

// 未登记和高风险同时存在时，拦截理由只提第一个命中的未登记 action
func TestSafetyFirstBlockingActionWins(t *testing.T) {
	safety := NewSafetyService(testCatalog())

	decision := safety.Evaluate(planOf("delete_account", "wipe_device"), knownUserContext())
	assert.True(t, decision.Block)
	assert.Contains(t, decision.Reason, "delete_account")
	assert.NotContains(t, decision.Reason, "wipe_device")
}

func TestSafetyAllowsLowAndMediumRisk(t *testing.T) {
	safety := NewSafetyService(testCatalog())

	decision := safety.Evaluate(planOf("check_account_status", "reset_password"), knownUserContext())
	assert.False(t, decision.Block)
	assert.Equal(t, "All actions allowed by policy", decision.Reason)
}
