package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"smartdesk/model"
	"smartdesk/utils"
)

const plannerSystemPrompt = `You are a planning agent for an internal service desk.

You receive a JSON object representing the user intent and context.
You must decide which runbooks (automations) to call.

Available runbooks (ids):
- check_account_status(user_id)
- reset_password(user_id, reason)
- lookup_pto_balance(user_id)

Rules:
- For account_access_issue in IT:
  - Always start with check_account_status.
  - If account is locked or user clearly can't log in, consider reset_password.
- For pto_balance in HR:
  - Use lookup_pto_balance.

Output ONLY valid JSON in this format:
{
  "requires_human_approval": false,
  "actions": [
    {"runbook_id": "check_account_status", "inputs": {"user_id": "abc"}},
    {"runbook_id": "reset_password", "inputs": {"user_id": "abc", "reason": "self_service_reset"}}
  ]
}
`

// PlannerService 根据上下文生成 runbook 执行计划
type PlannerService struct {
	model ModelCaller
}

func NewPlannerService(model ModelCaller) *PlannerService {
	return &PlannerService{model: model}
}

type plannerReply struct {
	RequiresHumanApproval bool `json:"requires_human_approval"`
	Actions               []struct {
		RunbookID string         `json:"runbook_id"`
		Inputs    map[string]any `json:"inputs"`
	} `json:"actions"`
}

// Plan 生成执行计划，action 顺序即执行顺序
// 模型输出不合法时兜底为空计划；空计划随后会被策略层拦截并走升级
func (s *PlannerService) Plan(ctx context.Context, enriched *model.EnrichedContext) model.PlanResult {
	fallback := model.PlanResult{Actions: []model.PlanAction{}}

	userPayload, err := json.MarshalIndent(enriched, "", "  ")
	if err != nil {
		log.Printf("[Planner] 上下文序列化失败: %v, 使用空计划", err)
		return fallback
	}

	raw, err := s.model.Call(ctx, plannerSystemPrompt, string(userPayload))
	if err != nil {
		log.Printf("[Planner] 模型调用失败: %v, 使用空计划", err)
		return fallback
	}

	var reply plannerReply
	if err := json.Unmarshal([]byte(utils.StripJSONFence(raw)), &reply); err != nil {
		log.Printf("[Planner] 模型输出解析失败: %v, raw=%s", err, utils.TruncateString(raw, 200))
		return fallback
	}

	actions := make([]model.PlanAction, 0, len(reply.Actions))
	for _, a := range reply.Actions {
		// runbook_id 缺失说明整段输出不可信，整体兜底
		if a.RunbookID == "" {
			log.Printf("[Planner] 模型输出缺少 runbook_id, 使用空计划")
			return fallback
		}
		inputs := a.Inputs
		if inputs == nil {
			inputs = map[string]any{}
		}
		actions = append(actions, model.PlanAction{RunbookID: a.RunbookID, Inputs: inputs})
	}

	log.Printf("[Planner] 生成计划: %d 个 action, requires_human_approval=%v",
		len(actions), reply.RequiresHumanApproval)
	return model.PlanResult{
		Actions:               actions,
		RequiresHumanApproval: reply.RequiresHumanApproval,
	}
}

// Summarize 根据意图和执行结果生成最终回复，纯函数、无 I/O
// 目前是固定句式表；后续可以换成模型生成
func (s *PlannerService) Summarize(intent model.IntentResult, results []model.RunbookResult) string {
	switch intent.Intent {
	case "account_access_issue":
		return "I checked your account and ran the appropriate recovery steps. Please follow the instructions you received (e.g., email or SMS) to complete your login."
	case "pto_balance":
		if len(results) > 0 {
			// 汇总只看第一个结果，所以计划里的执行顺序不能乱
			days, ok := results[0].Details["remaining_days"]
			if !ok {
				days = "N/A"
			}
			return fmt.Sprintf("You currently have %v days of PTO remaining.", days)
		}
	}
	return "I processed your request and logged the results."
}
