package model

type Domain string

const (
	DomainIT         Domain = "it"
	DomainHR         Domain = "hr"
	DomainFinance    Domain = "finance"
	DomainFacilities Domain = "facilities"
	DomainGeneral    Domain = "general"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type RunbookStatus string

const (
	RunbookSuccess RunbookStatus = "success"
	RunbookError   RunbookStatus = "error"
)

type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketPending  TicketStatus = "pending"
	TicketResolved TicketStatus = "resolved"
	TicketClosed   TicketStatus = "closed"
)

// 流水线各阶段的名称，活动日志按此记录
type PipelineStep string

const (
	StepTriage     PipelineStep = "triage"
	StepEnrichment PipelineStep = "enrichment"
	StepPlanning   PipelineStep = "planning"
	StepSafety     PipelineStep = "safety"
	StepEscalation PipelineStep = "escalation"
	StepExecution  PipelineStep = "runbook_execution"
)

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply       string             `json:"reply"`
	ActivityLog []ActivityLogEntry `json:"activity_log"`
}

// ActivityLogEntry 单次请求内的一条活动记录，只随响应返回、不落盘
type ActivityLogEntry struct {
	Step   PipelineStep `json:"step"`
	Result any          `json:"result"`
}

// IntentResult 意图分类结果，由 Triage 阶段生成后不再修改
type IntentResult struct {
	UserID     string  `json:"user_id"`
	RawMessage string  `json:"raw_message"`
	Intent     string  `json:"intent"`
	Domain     Domain  `json:"domain"`
	Confidence float64 `json:"confidence"`
	Urgency    Urgency `json:"urgency"`
}

type UserProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Role       string `json:"role"`
}

// EnrichedContext 用户档案 + 意图的合并上下文，后续阶段只读
type EnrichedContext struct {
	User   *UserProfile `json:"user"`
	Intent IntentResult `json:"intent"`
}

// PlanAction 一次 runbook 调用：目录键 + 自由格式入参
type PlanAction struct {
	RunbookID string         `json:"runbook_id"`
	Inputs    map[string]any `json:"inputs"`
}

// PlanResult actions 的顺序即执行顺序，不可打乱
type PlanResult struct {
	Actions               []PlanAction `json:"actions"`
	RequiresHumanApproval bool         `json:"requires_human_approval"`
}

type SafetyDecision struct {
	Block  bool   `json:"block"`
	Reason string `json:"reason"`
}

// RunbookOutcome runbook 实现的原始返回，尚未标注 runbook_id
type RunbookOutcome struct {
	Status  RunbookStatus  `json:"status"`
	Details map[string]any `json:"details"`
}

type RunbookResult struct {
	RunbookID string         `json:"runbook_id"`
	Status    RunbookStatus  `json:"status"`
	Details   map[string]any `json:"details"`
}

// EscalationResult 升级处理的产物，写入活动日志并拼进回复
type EscalationResult struct {
	TicketID string `json:"ticket_id"`
	Summary  string `json:"summary"`
}

type Ticket struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Summary   string         `json:"summary"`
	Details   map[string]any `json:"details"`
	Status    TicketStatus   `json:"status"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// RunbookCatalogEntry runbook 目录里的静态配置，进程启动时加载一次
type RunbookCatalogEntry struct {
	RiskLevel RiskLevel `yaml:"risk_level" json:"risk_level"`
}

// RunbookCatalog 以 runbook_id 为键；不在目录中的 runbook 一律视为不可信
type RunbookCatalog map[string]RunbookCatalogEntry

type RunbookConfig struct {
	Runbooks []RunbookDefinition `yaml:"runbooks"`
}

type RunbookDefinition struct {
	ID        string    `yaml:"id"`
	RiskLevel RiskLevel `yaml:"risk_level"`
}
