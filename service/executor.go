package service

import (
	"log"

	"smartdesk/model"
	"smartdesk/service/runbooks"
)

// RunbookFunc runbook 实现的统一签名：只能访问声明的入参，拿不到更大的上下文
type RunbookFunc func(inputs map[string]any) model.RunbookOutcome

// ExecutorService runbook 调度器，按注册表分发
type ExecutorService struct {
	registry map[string]RunbookFunc
}

// NewExecutorService 构建调度器，注册表在启动时固定，之后只读
func NewExecutorService() *ExecutorService {
	return &ExecutorService{
		registry: map[string]RunbookFunc{
			"check_account_status": runbooks.CheckAccountStatus,
			"reset_password":       runbooks.ResetPassword,
			"lookup_pto_balance":   runbooks.LookupPTOBalance,
		},
	}
}

// Execute 执行单个 action 并标注 runbook_id
// 策略层放行后理论上不会出现未知 id，这里仍独立防御：
// 未知 id 返回 error 状态的结果，不让整个请求失败，也不重试
func (s *ExecutorService) Execute(action model.PlanAction, enriched *model.EnrichedContext) model.RunbookResult {
	fn, ok := s.registry[action.RunbookID]
	if !ok {
		log.Printf("[Executor] 未找到 runbook: %s", action.RunbookID)
		return model.RunbookResult{
			RunbookID: action.RunbookID,
			Status:    model.RunbookError,
			Details:   map[string]any{"error": "Runbook not found"},
		}
	}

	outcome := fn(action.Inputs)
	log.Printf("[Executor] runbook %s 执行完成, status=%s", action.RunbookID, outcome.Status)
	return model.RunbookResult{
		RunbookID: action.RunbookID,
		Status:    outcome.Status,
		Details:   outcome.Details,
	}
}

// Registered 返回已注册的 runbook id，供启动时与目录做交叉校验
func (s *ExecutorService) Registered() []string {
	ids := make([]string, 0, len(s.registry))
	for id := range s.registry {
		ids = append(ids, id)
	}
	return ids
}

// Has 判断 runbook 是否有已注册的实现
func (s *ExecutorService) Has(runbookID string) bool {
	_, ok := s.registry[runbookID]
	return ok
}
