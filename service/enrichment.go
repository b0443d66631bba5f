package service

import (
	"context"
	"fmt"
	"log"

	"smartdesk/internal/directory"
	"smartdesk/model"
)

// EnrichmentService 把用户档案并入意图，产出后续阶段共用的上下文
type EnrichmentService struct {
	directory directory.Service
}

func NewEnrichmentService(dir directory.Service) *EnrichmentService {
	return &EnrichmentService{directory: dir}
}

// Enrich 查询用户档案并与意图合并
// 目录查询失败直接上抛：查不到用户是重要的安全信号，不能掩盖
func (s *EnrichmentService) Enrich(ctx context.Context, userID string, intent model.IntentResult) (*model.EnrichedContext, error) {
	profile, err := s.directory.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("查询用户档案失败: %w", err)
	}

	if profile == nil {
		log.Printf("[Enrichment] 目录中不存在用户 %s，交由策略层拦截", userID)
	}

	return &model.EnrichedContext{
		User:   profile,
		Intent: intent,
	}, nil
}
