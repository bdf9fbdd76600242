package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buyer-quiz/internal/domain"
	"buyer-quiz/internal/service"
)

func TestAdminHandlerLogin(t *testing.T) {
	auth := newTestAuth(t)
	h := NewAdminHandler(zap.NewNop(), auth, &mockLeadRepo{}, &mockResultRepo{})

	w := performJSON(t, h.Login, http.MethodPost, "/admin/login", gin.H{"password": "hunter2"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var token service.AdminToken
	if err := json.Unmarshal(w.Body.Bytes(), &token); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if token.AccessToken == "" {
		t.Fatalf("expected an access token")
	}
}

func TestAdminHandlerLoginWrongPassword(t *testing.T) {
	h := NewAdminHandler(zap.NewNop(), newTestAuth(t), &mockLeadRepo{}, &mockResultRepo{})

	w := performJSON(t, h.Login, http.MethodPost, "/admin/login", gin.H{"password": "letmein"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminHandlerLoginDisabled(t *testing.T) {
	auth := service.NewAdminAuthService("", "", 15*time.Minute)
	h := NewAdminHandler(zap.NewNop(), auth, &mockLeadRepo{}, &mockResultRepo{})

	w := performJSON(t, h.Login, http.MethodPost, "/admin/login", gin.H{"password": "anything"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestAdminHandlerListLeads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	leads := &mockLeadRepo{leads: []domain.Lead{
		{ID: "l-1", Email: "a@example.com"},
		{ID: "l-2", Email: "b@example.com"},
	}}
	h := NewAdminHandler(zap.NewNop(), newTestAuth(t), leads, &mockResultRepo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/leads?limit=1&offset=1", nil)
	h.ListLeads(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Leads  []domain.Lead `json:"leads"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Leads) != 1 || resp.Leads[0].ID != "l-2" {
		t.Fatalf("unexpected page: %+v", resp.Leads)
	}
}

func TestAdminHandlerGetLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	leads := &mockLeadRepo{leads: []domain.Lead{{ID: "l-1", Email: "a@example.com"}}}
	results := &mockResultRepo{results: []domain.QuizResult{{ID: "r-1", LeadID: "l-1", TypeCode: "ENFP"}}}
	h := NewAdminHandler(zap.NewNop(), newTestAuth(t), leads, results)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/leads/l-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "l-1"}}
	h.GetLead(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Lead    domain.Lead         `json:"lead"`
		Results []domain.QuizResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Lead.ID != "l-1" || len(resp.Results) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAdminHandlerGetLeadNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAdminHandler(zap.NewNop(), newTestAuth(t), &mockLeadRepo{}, &mockResultRepo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/leads/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	h.GetLead(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
