package service

import (
	"context"
	"fmt"
	"log"

	"smartdesk/model"
)

// Orchestrator 流水线编排器
// 按固定顺序串联各阶段：分类 → 补全 → 规划 → 策略 → 执行 → 汇总
// 每个请求只走一遍，任何阶段都不会被重入
type Orchestrator struct {
	triage     *TriageService
	enrichment *EnrichmentService
	planner    *PlannerService
	safety     *SafetyService
	executor   *ExecutorService
	escalation *EscalationService
}

func NewOrchestrator(
	triage *TriageService,
	enrichment *EnrichmentService,
	planner *PlannerService,
	safety *SafetyService,
	executor *ExecutorService,
	escalation *EscalationService,
) *Orchestrator {
	return &Orchestrator{
		triage:     triage,
		enrichment: enrichment,
		planner:    planner,
		safety:     safety,
		executor:   executor,
		escalation: escalation,
	}
}

// HandleChat 处理一条用户消息，返回回复和逐步的活动日志
// 两个升级出口互斥：走到策略闸门就说明规划阶段没有要求人工审批
// 出错时把已产生的日志一并返回，便于调用方定位失败发生在哪一步
func (o *Orchestrator) HandleChat(ctx context.Context, userID, message string) (string, []model.ActivityLogEntry, error) {
	activityLog := make([]model.ActivityLogEntry, 0, 6)

	// 1) 意图分类，对调用方永不失败
	intent := o.triage.Classify(ctx, userID, message)
	activityLog = append(activityLog, model.ActivityLogEntry{Step: model.StepTriage, Result: intent})

	// 2) 上下文补全，目录故障直接终止请求
	enriched, err := o.enrichment.Enrich(ctx, userID, intent)
	if err != nil {
		return "", activityLog, err
	}
	activityLog = append(activityLog, model.ActivityLogEntry{Step: model.StepEnrichment, Result: enriched})

	// 3) 生成执行计划
	plan := o.planner.Plan(ctx, enriched)
	activityLog = append(activityLog, model.ActivityLogEntry{Step: model.StepPlanning, Result: plan})

	// 3a) 规划阶段主动要求人工审批，不再进策略闸门
	if plan.RequiresHumanApproval {
		log.Printf("[Orchestrator] 计划要求人工审批, user=%s", userID)
		escalated, err := o.escalation.Escalate(ctx, userID, message, enriched, plan)
		if err != nil {
			return "", activityLog, err
		}
		activityLog = append(activityLog, model.ActivityLogEntry{Step: model.StepEscalation, Result: escalated})
		reply := fmt.Sprintf("This request needs human review. I created a ticket for a human agent: %s", escalated.TicketID)
		return reply, activityLog, nil
	}

	// 4) 策略闸门
	decision := o.safety.Evaluate(plan, enriched)
	activityLog = append(activityLog, model.ActivityLogEntry{Step: model.StepSafety, Result: decision})

	if decision.Block {
		escalated, err := o.escalation.Escalate(ctx, userID, message, enriched, plan)
		if err != nil {
			return "", activityLog, err
		}
		activityLog = append(activityLog, model.ActivityLogEntry{Step: model.StepEscalation, Result: escalated})
		reply := fmt.Sprintf("I couldn't safely automate this (%s). I created a ticket for a human agent: %s",
			decision.Reason, escalated.TicketID)
		return reply, activityLog, nil
	}

	// 5) 按计划顺序执行 runbook，单个失败不影响其余 action
	results := make([]model.RunbookResult, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		results = append(results, o.executor.Execute(action, enriched))
	}
	activityLog = append(activityLog, model.ActivityLogEntry{Step: model.StepExecution, Result: results})

	// 6) 汇总回复
	reply := o.planner.Summarize(intent, results)
	return reply, activityLog, nil
}
