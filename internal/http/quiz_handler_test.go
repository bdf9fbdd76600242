package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"buyer-quiz/internal/domain"
	"buyer-quiz/internal/llm"
	"buyer-quiz/internal/scoring"
	"buyer-quiz/internal/service"
)

type mockLeadRepo struct {
	leads   []domain.Lead
	listErr error
}

func (m *mockLeadRepo) UpsertByEmail(_ context.Context, lead domain.Lead) (domain.Lead, error) {
	m.leads = append(m.leads, lead)
	return lead, nil
}

func (m *mockLeadRepo) GetByID(_ context.Context, id string) (domain.Lead, error) {
	for _, l := range m.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Lead{}, pgx.ErrNoRows
}

func (m *mockLeadRepo) List(_ context.Context, limit, offset int) ([]domain.Lead, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if offset >= len(m.leads) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.leads) {
		end = len(m.leads)
	}
	return m.leads[offset:end], nil
}

type mockResultRepo struct {
	results []domain.QuizResult
}

func (m *mockResultRepo) Insert(_ context.Context, result domain.QuizResult) error {
	m.results = append(m.results, result)
	return nil
}

func (m *mockResultRepo) FindByLeadID(_ context.Context, leadID string) ([]domain.QuizResult, error) {
	var out []domain.QuizResult
	for _, r := range m.results {
		if r.LeadID == leadID {
			out = append(out, r)
		}
	}
	return out, nil
}

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func newTestQuizHandler(t *testing.T, limiter service.SubmitRateLimiter) (*QuizHandler, *mockLeadRepo, *mockResultRepo) {
	t.Helper()

	engine, err := scoring.NewEngine(scoring.DefaultCatalog())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	logger := zap.NewNop()
	leads := &mockLeadRepo{}
	results := &mockResultRepo{}
	reports := service.NewReportService(&llm.MockClient{Err: context.DeadlineExceeded}, logger)
	quiz := service.NewQuizService(logger, engine, leads, results, reports, nil, limiter)

	return NewQuizHandler(logger, scoring.DefaultCatalog(), quiz), leads, results
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestQuizHandlerListItems(t *testing.T) {
	h, _, _ := newTestQuizHandler(t, nil)

	w := performJSON(t, h.ListItems, http.MethodGet, "/quiz/items", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Items []scoring.Item `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != scoring.DefaultCatalog().Len() {
		t.Fatalf("expected full catalog, got %d items", len(resp.Items))
	}
}

func TestQuizHandlerSubmit(t *testing.T) {
	h, leads, results := newTestQuizHandler(t, nil)

	w := performJSON(t, h.Submit, http.MethodPost, "/quiz/submissions", gin.H{
		"name":    "Dana",
		"email":   "dana@example.com",
		"answers": map[string]int{"O1": 5, "C1": 4},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(leads.leads) != 1 || len(results.results) != 1 {
		t.Fatalf("expected one lead and one result persisted")
	}

	var resp struct {
		Result domain.QuizResult `json:"result"`
		Report domain.Report     `json:"report"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result.TypeCode == "" || resp.Report.Headline == "" {
		t.Fatalf("expected scored result and report, got %+v", resp)
	}
}

func TestQuizHandlerSubmitRejectsBadEmail(t *testing.T) {
	h, leads, _ := newTestQuizHandler(t, nil)

	w := performJSON(t, h.Submit, http.MethodPost, "/quiz/submissions", gin.H{
		"email":   "not-an-email",
		"answers": map[string]int{"O1": 5},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(leads.leads) != 0 {
		t.Fatalf("expected no lead persisted")
	}
}

func TestQuizHandlerSubmitRateLimited(t *testing.T) {
	h, _, _ := newTestQuizHandler(t, denyAllLimiter{})

	w := performJSON(t, h.Submit, http.MethodPost, "/quiz/submissions", gin.H{
		"email":   "dana@example.com",
		"answers": map[string]int{"O1": 5},
	})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestQuizHandlerPreview(t *testing.T) {
	h, leads, results := newTestQuizHandler(t, nil)

	w := performJSON(t, h.Preview, http.MethodPost, "/quiz/preview", gin.H{
		"answers": map[string]int{"O1": 5, "O2": 5},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(leads.leads) != 0 || len(results.results) != 0 {
		t.Fatalf("preview must not persist anything")
	}

	var result scoring.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Type.Code == "" {
		t.Fatalf("expected a type code in the preview result")
	}
}
