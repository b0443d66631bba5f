package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartdesk/dao"
	"smartdesk/model"
	"smartdesk/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedModel struct {
	triageReply  string
	plannerReply string
}

func (s *scriptedModel) Call(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if strings.Contains(systemPrompt, "intent classification") {
		return s.triageReply, nil
	}
	return s.plannerReply, nil
}

type staticDirectory struct{}

func (staticDirectory) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return &model.UserProfile{ID: userID, Name: "Test User"}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, dao.TicketStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := &scriptedModel{
		triageReply:  `{"intent": "pto_balance", "domain": "hr", "urgency": "low", "confidence": 0.9}`,
		plannerReply: `{"requires_human_approval": false, "actions": [{"runbook_id": "lookup_pto_balance", "inputs": {"user_id": "u-1"}}]}`,
	}
	store := dao.NewMemoryStore()

	orchestrator := service.NewOrchestrator(
		service.NewTriageService(m),
		service.NewEnrichmentService(staticDirectory{}),
		service.NewPlannerService(m),
		service.NewSafetyService(model.RunbookCatalog{
			"lookup_pto_balance": {RiskLevel: model.RiskLow},
		}),
		service.NewExecutorService(),
		service.NewEscalationService(store),
	)

	r := gin.New()
	r.POST("/chat", ChatHandler(orchestrator))
	r.GET("/tickets/:id", GetTicketHandler(store))
	return r, store
}

func TestChatHandlerOK(t *testing.T) {
	r, _ := newTestRouter(t)

	body, _ := json.Marshal(model.ChatRequest{UserID: "u-1", Message: "how many PTO days left?"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "12")
	require.NotEmpty(t, resp.ActivityLog)
	assert.Equal(t, model.StepTriage, resp.ActivityLog[0].Step)
}

func TestChatHandlerRejectsBadRequest(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, body := range []string{"not json", `{"user_id": "", "message": "hi"}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetTicketHandler(t *testing.T) {
	r, store := newTestRouter(t)

	require.NoError(t, store.Create(context.Background(), &model.Ticket{
		ID:     "t-1",
		UserID: "u-1",
		Status: model.TicketOpen,
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/tickets/t-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/tickets/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
