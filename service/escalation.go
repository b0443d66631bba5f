package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"smartdesk/dao"
	"smartdesk/model"

	"github.com/google/uuid"
)

// EscalationService 创建人工处理工单
type EscalationService struct {
	store dao.TicketStore
}

func NewEscalationService(store dao.TicketStore) *EscalationService {
	return &EscalationService{store: store}
}

// Escalate 把完整上下文和计划写进工单，交给人工处理
// 工单创建是最后的兜底，失败必须上抛，不能吞掉
func (s *EscalationService) Escalate(ctx context.Context, userID, message string, enriched *model.EnrichedContext, plan model.PlanResult) (*model.EscalationResult, error) {
	summary := fmt.Sprintf("User %s requested help: %s", userID, message)

	now := time.Now().Format(time.RFC3339)
	ticket := &model.Ticket{
		ID:      uuid.New().String(),
		UserID:  userID,
		Summary: summary,
		Details: map[string]any{
			"user":   enriched.User,
			"intent": enriched.Intent,
			"plan":   plan,
		},
		Status:    model.TicketOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("创建工单失败: %w", err)
	}

	log.Printf("[Escalation] 已创建工单 %s, user=%s", ticket.ID, userID)
	return &model.EscalationResult{
		TicketID: ticket.ID,
		Summary:  summary,
	}, nil
}
