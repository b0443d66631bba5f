package runbooks

import "smartdesk/model"

// ==================== PTO 余额查询 ====================

// LookupPTOBalance 查询带薪假期剩余天数
// 占位实现：固定返回 12 天
func LookupPTOBalance(inputs map[string]any) model.RunbookOutcome {
	userID, _ := inputs["user_id"].(string)

	return model.RunbookOutcome{
		Status: model.RunbookSuccess,
		Details: map[string]any{
			"user_id":        userID,
			"remaining_days": 12,
		},
	}
}
