package service

import (
	"context"
	"encoding/json"
	"log"

	"smartdesk/model"
	"smartdesk/utils"
)

// ModelCaller 模型调用接口：system + user 两段文本进，原始文本出
// 模型输出不可信，调用方必须自己兜底解析失败的情况
type ModelCaller interface {
	Call(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const triageSystemPrompt = `You are an intent classification assistant for an internal service desk.

Given a user's message, classify:

- intent: a short snake_case label like:
  - account_access_issue
  - pto_balance
  - hr_policy_question
  - device_issue
  - payroll_question
  - unknown

- domain: one of: "it", "hr", "finance", "facilities", "general"

- urgency: one of: "low", "normal", "high"

Respond ONLY with valid JSON in this format:
{
  "intent": "...",
  "domain": "...",
  "urgency": "...",
  "confidence": 0.0
}
`

// TriageService 意图分类
type TriageService struct {
	model ModelCaller
}

func NewTriageService(model ModelCaller) *TriageService {
	return &TriageService{model: model}
}

// 模型返回的原始结构，字段用指针区分"缺失"和"零值"
type triageReply struct {
	Intent     *string  `json:"intent"`
	Domain     *string  `json:"domain"`
	Urgency    *string  `json:"urgency"`
	Confidence *float64 `json:"confidence"`
}

// Classify 对用户消息做意图分类，对调用方永不报错
// 模型输出解析失败时使用兜底结果（confidence 为非数字也算解析失败）
func (s *TriageService) Classify(ctx context.Context, userID, message string) model.IntentResult {
	result := model.IntentResult{
		UserID:     userID,
		RawMessage: message,
		Intent:     "unknown",
		Domain:     model.DomainGeneral,
		Urgency:    model.UrgencyNormal,
		Confidence: 0.3,
	}

	raw, err := s.model.Call(ctx, triageSystemPrompt, "User message: "+message)
	if err != nil {
		log.Printf("[Triage] 模型调用失败: %v, 使用兜底结果", err)
		return result
	}

	var reply triageReply
	if err := json.Unmarshal([]byte(utils.StripJSONFence(raw)), &reply); err != nil {
		log.Printf("[Triage] 模型输出解析失败: %v, raw=%s", err, utils.TruncateString(raw, 200))
		return result
	}

	// 解析成功后按字段取值，缺失的字段保留兜底默认值
	if reply.Intent != nil {
		result.Intent = *reply.Intent
	}
	if reply.Domain != nil {
		result.Domain = model.Domain(*reply.Domain)
	}
	if reply.Urgency != nil {
		result.Urgency = model.Urgency(*reply.Urgency)
	}
	if reply.Confidence != nil {
		result.Confidence = *reply.Confidence
	}

	log.Printf("[Triage] intent=%s, domain=%s, urgency=%s, confidence=%.2f",
		result.Intent, result.Domain, result.Urgency, result.Confidence)
	return result
}
