package route

import (
	"smartdesk/api"
	"smartdesk/dao"
	"smartdesk/service"

	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine, orchestrator *service.Orchestrator, store dao.TicketStore, llmConfigured bool) {

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":         "ok",
			"llm_configured": llmConfigured,
		})
	})

	// 聊天接口
	r.POST("/chat", api.ChatHandler(orchestrator))

	// 工单查询分组
	ticketGroup := r.Group("/tickets")
	{
		ticketGroup.GET("/:id", api.GetTicketHandler(store)) // GET /tickets/:id
	}
}
