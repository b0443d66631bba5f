package runbooks

import "smartdesk/model"

// ==================== 账号状态检查 ====================

// CheckAccountStatus 查询账号当前状态
// 占位实现：固定返回"多次登录失败导致锁定"
func CheckAccountStatus(inputs map[string]any) model.RunbookOutcome {
	userID, _ := inputs["user_id"].(string)

	return model.RunbookOutcome{
		Status: model.RunbookSuccess,
		Details: map[string]any{
			"user_id":        userID,
			"account_status": "locked",
			"reason":         "too_many_failed_attempts",
		},
	}
}
