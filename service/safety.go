package service

import (
	"fmt"
	"log"

	"smartdesk/model"
)

// SafetyService 策略闸门：决定计划是自动执行还是升级人工
// 纯内存判定，除启动时加载的目录外不做任何 I/O
type SafetyService struct {
	catalog model.RunbookCatalog
}

func NewSafetyService(catalog model.RunbookCatalog) *SafetyService {
	return &SafetyService{catalog: catalog}
}

// Evaluate 按优先级顺序检查，命中第一条拦截规则即返回：
//  1. 用户身份未知
//  2. 计划为空
//  3. 第一个未登记到目录的 action
//  4. 第一个高风险 action
//
// 都未命中则放行。low/medium 风险当前同等对待，只有 high 拦截
func (s *SafetyService) Evaluate(plan model.PlanResult, enriched *model.EnrichedContext) model.SafetyDecision {
	if enriched.User == nil || enriched.User.ID == "" {
		log.Printf("[Safety] 拦截: 用户身份未知")
		return model.SafetyDecision{Block: true, Reason: "Unknown user"}
	}

	if len(plan.Actions) == 0 {
		log.Printf("[Safety] 拦截: 计划为空")
		return model.SafetyDecision{Block: true, Reason: "No actions in plan"}
	}

	for _, action := range plan.Actions {
		if _, ok := s.catalog[action.RunbookID]; !ok {
			log.Printf("[Safety] 拦截: runbook %s 未登记", action.RunbookID)
			return model.SafetyDecision{
				Block:  true,
				Reason: fmt.Sprintf("Runbook %q is not registered in the catalog", action.RunbookID),
			}
		}
	}

	for _, action := range plan.Actions {
		if s.catalog[action.RunbookID].RiskLevel == model.RiskHigh {
			log.Printf("[Safety] 拦截: runbook %s 为高风险", action.RunbookID)
			return model.SafetyDecision{
				Block:  true,
				Reason: fmt.Sprintf("Runbook %q is high-risk and cannot be auto-executed", action.RunbookID),
			}
		}
	}

	return model.SafetyDecision{Block: false, Reason: "All actions allowed by policy"}
}
