package runbooks

import "smartdesk/model"

// ==================== 密码重置 ====================

// ResetPassword 触发自助密码重置流程
func ResetPassword(inputs map[string]any) model.RunbookOutcome {
	userID, _ := inputs["user_id"].(string)
	reason, ok := inputs["reason"].(string)
	if !ok || reason == "" {
		reason = "unspecified"
	}

	return model.RunbookOutcome{
		Status: model.RunbookSuccess,
		Details: map[string]any{
			"user_id": userID,
			"reason":  reason,
			"note":    "Password reset via standard self-service flow.",
		},
	}
}
