package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"smartdesk/dao"
	"smartdesk/internal/directory"
	"smartdesk/internal/llmclient"
	"smartdesk/model"
	"smartdesk/route"
	"smartdesk/service"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

type appConfig struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	LLM struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
	} `yaml:"llm"`
	Directory struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"directory"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

func main() {
	r := gin.Default()

	cfg, err := loadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("加载应用配置失败: %v", err)
	}

	// runbook 目录缺失或非法属于启动级错误，不留到请求期再暴露
	catalog, err := loadRunbookCatalog("config/runbooks.yaml")
	if err != nil {
		log.Fatalf("加载 runbook 目录失败: %v", err)
	}
	log.Printf("加载 runbook 目录成功，共 %d 个 runbook", len(catalog))

	llmClient := llmclient.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)

	var dir directory.Service
	if cfg.Directory.BaseURL != "" {
		dir = directory.NewHTTPClient(cfg.Directory.BaseURL)
	} else {
		log.Printf("未配置目录服务，使用内置假目录")
		dir = directory.Static{}
	}

	var store dao.TicketStore
	if cfg.Redis.Addr != "" {
		store = dao.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, 30*24*time.Hour)
	} else {
		log.Printf("未配置 redis，工单存内存")
		store = dao.NewMemoryStore()
	}
	defer store.Close()

	executor := service.NewExecutorService()
	if err := crossCheckCatalog(catalog, executor); err != nil {
		log.Fatalf("runbook 目录校验失败: %v", err)
	}

	orchestrator := service.NewOrchestrator(
		service.NewTriageService(llmClient),
		service.NewEnrichmentService(dir),
		service.NewPlannerService(llmClient),
		service.NewSafetyService(catalog),
		executor,
		service.NewEscalationService(store),
	)

	route.Register(r, orchestrator, store, cfg.LLM.BaseURL != "")

	if err := r.Run(cfg.Server.Addr); err != nil {
		panic(err)
	}
}

func loadConfig(path string) (*appConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg appConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	return &cfg, nil
}

func loadRunbookCatalog(path string) (model.RunbookCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config model.RunbookConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if len(config.Runbooks) == 0 {
		return nil, fmt.Errorf("runbook 目录为空: %s", path)
	}

	catalog := make(model.RunbookCatalog, len(config.Runbooks))
	for _, def := range config.Runbooks {
		if def.ID == "" {
			return nil, fmt.Errorf("存在缺少 id 的 runbook 条目")
		}
		switch def.RiskLevel {
		case model.RiskLow, model.RiskMedium, model.RiskHigh:
		default:
			return nil, fmt.Errorf("runbook %s 的 risk_level 非法: %q", def.ID, def.RiskLevel)
		}
		catalog[def.ID] = model.RunbookCatalogEntry{RiskLevel: def.RiskLevel}
	}

	return catalog, nil
}

// crossCheckCatalog 启动时交叉校验目录和注册表
// 目录里登记了却没有实现的 runbook 会在策略层放行后执行失败，直接拒绝启动；
// 有实现但未登记的只打日志，策略层本来就会拦截它
func crossCheckCatalog(catalog model.RunbookCatalog, executor *service.ExecutorService) error {
	for id := range catalog {
		if !executor.Has(id) {
			return fmt.Errorf("runbook %s 已登记但没有对应实现", id)
		}
	}
	for _, id := range executor.Registered() {
		if _, ok := catalog[id]; !ok {
			log.Printf("[main] runbook %s 有实现但未登记，策略层将拦截它", id)
		}
	}
	return nil
}
