package api

import (
	"errors"
	"net/http"

	"smartdesk/dao"
	"smartdesk/model"
	"smartdesk/service"

	"github.com/gin-gonic/gin"
)

func ChatHandler(orchestrator *service.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if req.UserID == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and message are required"})
			return
		}

		reply, activityLog, err := orchestrator.HandleChat(c.Request.Context(), req.UserID, req.Message)
		if err != nil {
			// 目录或工单服务故障，没有正常回复可给，返回错误和已产生的日志
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":        err.Error(),
				"activity_log": activityLog,
			})
			return
		}

		c.JSON(http.StatusOK, model.ChatResponse{
			Reply:       reply,
			ActivityLog: activityLog,
		})
	}
}

func GetTicketHandler(store dao.TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticket, err := store.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, dao.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, ticket)
	}
}
