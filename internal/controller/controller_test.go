package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/chatbot"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	records []model.PerformanceRecord
}

func (m *memStore) Create(ctx context.Context, r *model.PerformanceRecord) error {
	m.records = append(m.records, *r)
	return nil
}

func (m *memStore) CreateBatch(ctx context.Context, rs []model.PerformanceRecord) error {
	m.records = append(m.records, rs...)
	return nil
}

func (m *memStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

func (m *memStore) ListByStudent(ctx context.Context, id string) ([]model.PerformanceRecord, error) {
	var out []model.PerformanceRecord
	for _, r := range m.records {
		if r.StudentID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) Latest(ctx context.Context, id, subject string) (*model.PerformanceRecord, error) {
	for i := len(m.records) - 1; i >= 0; i-- {
		r := m.records[i]
		if r.StudentID == id && (subject == "" || r.Subject == subject) {
			return &r, nil
		}
	}
	return nil, nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	tables := analysis.NewTables(analysis.NewVocabulary([]string{"Mathematics", "Science"}), analysis.DefaultWeights())
	classifier := analysis.NewRuleClassifier(tables.Weights)
	stats := service.DatasetStats{Loaded: true, Subjects: tables.Vocabulary.Subjects()}

	analysisCtl := NewAnalysisController(service.NewAnalysisService(tables, classifier, store, nil))
	recCtl := NewRecommendationController(service.NewRecommendationService(tables, classifier, store))
	chatCtl := NewChatController(service.NewChatService(chatbot.NewDefaultResponder(), store, nil))
	studentCtl := NewStudentController(service.NewHistoryService(store))
	healthCtl := NewHealthController(nil, nil, stats)
	infoCtl := NewInfoController(stats)

	r := gin.New()
	r.GET("/", infoCtl.Root)
	api := r.Group("/api")
	api.GET("/health", healthCtl.HealthCheck)
	api.POST("/analyze-performance", analysisCtl.AnalyzePerformance)
	api.GET("/recommendations/:student_id", recCtl.GetRecommendations)
	api.POST("/chatbot", chatCtl.Chat)
	api.GET("/students/:student_id/performance", studentCtl.GetPerformanceHistory)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestAnalyzeThenHistoryAndRecommendations(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(store)

	code, env := do(t, r, http.MethodPost, "/api/analyze-performance", gin.H{
		"student_id": "s100",
		"subject":    "Mathematics",
		"quiz_score": 35,
		"attendance": 40,
	})
	require.Equal(t, http.StatusOK, code)

	var analysisResp struct {
		StudentID         string                     `json:"student_id"`
		PerformanceLevel  string                     `json:"performance_level"`
		LearningGaps      []analysis.LearningGap     `json:"learning_gaps"`
		FeatureImportance analysis.FeatureImportance `json:"feature_importance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &analysisResp))
	assert.Equal(t, "S100", analysisResp.StudentID)
	assert.Equal(t, "Poor", analysisResp.PerformanceLevel)
	assert.Len(t, analysisResp.LearningGaps, 2)
	assert.Len(t, analysisResp.FeatureImportance, 3)

	code, env = do(t, r, http.MethodGet, "/api/students/S100/performance", nil)
	require.Equal(t, http.StatusOK, code)
	var history model.PerformanceHistoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history.PerformanceHistory, 1)

	code, env = do(t, r, http.MethodGet, "/api/recommendations/s100", nil)
	require.Equal(t, http.StatusOK, code)
	var recs struct {
		Subject         string `json:"subject"`
		Recommendations []struct {
			Type string `json:"type"`
		} `json:"recommendations"`
		StudyPlan struct {
			DurationWeeks int `json:"duration_weeks"`
		} `json:"study_plan"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &recs))
	assert.Equal(t, "Mathematics", recs.Subject)
	assert.Len(t, recs.Recommendations, 5)
	assert.Equal(t, 4, recs.StudyPlan.DurationWeeks)
}

func TestAnalyzeValidation(t *testing.T) {
	r := newTestRouter(&memStore{})

	code, _ := do(t, r, http.MethodPost, "/api/analyze-performance", gin.H{
		"student_id": "S1",
		"subject":    "Mathematics",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := do(t, r, http.MethodPost, "/api/analyze-performance", gin.H{
		"student_id": "S1",
		"subject":    "Mathematics",
		"quiz_score": "high",
		"attendance": 80,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, http.StatusBadRequest, env.Code)
}

func TestRecommendationsErrors(t *testing.T) {
	r := newTestRouter(&memStore{})

	code, _ := do(t, r, http.MethodGet, "/api/recommendations/S1?quiz_score=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := do(t, r, http.MethodGet, "/api/recommendations/S1", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Student not found", env.Message)

	code, _ = do(t, r, http.MethodGet, "/api/recommendations/S1?subject=Science&quiz_score=80&attendance=90", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestChatbotEndpoint(t *testing.T) {
	r := newTestRouter(&memStore{})

	code, env := do(t, r, http.MethodPost, "/api/chatbot", gin.H{"message": "asdkjhaskjdh"})
	require.Equal(t, http.StatusOK, code)
	var reply struct {
		Response    string `json:"response"`
		Intent      string `json:"intent"`
		ContextUsed bool   `json:"context_used"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, chatbot.FallbackReply, reply.Response)
	assert.Equal(t, "general", reply.Intent)
	assert.False(t, reply.ContextUsed)

	code, env = do(t, r, http.MethodPost, "/api/chatbot", gin.H{"student_id": "S1"})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, chatbot.FallbackReply, reply.Response)
}

func TestHistoryNotFoundAndSystemRoutes(t *testing.T) {
	r := newTestRouter(&memStore{})

	code, _ := do(t, r, http.MethodGet, "/api/students/S404/performance", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"model_loaded":true`)

	code, env = do(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "/api/analyze-performance")
}
