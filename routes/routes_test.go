package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/models"
	"github.com/SSY1203/emotion-wise/services"
	"github.com/SSY1203/emotion-wise/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

// fakeModel 测试用模型桩
type fakeModel struct {
	content string
	err     error
	called  bool
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	f.called = true
	return f.content, f.err
}

func newTestRouter(model *fakeModel) (*gin.Engine, *store.Store) {
	s := store.NewStore(store.NewMemoryCollections())
	analysisService := services.NewAnalysisService(&services.OpenAIClient{
		Chat:        model,
		Model:       "gpt-4o",
		MaxTokens:   1500,
		Temperature: 0.7,
	}, false)

	r := gin.New()
	RegisterRoutes(r, s, analysisService)
	return r, s
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validModelResponse = `{
	"primary_emotion": "sadness",
	"confidence_score": 0.8,
	"triggers": ["当众被批评"],
	"advice_recommendations": [
		{"type": "breathing_exercise", "title": "平复呼吸", "priority": "high", "category": "immediate"},
		{"type": "self_care", "title": "照顾好自己", "priority": "medium", "category": "daily"}
	]
}`

func createRecordBody() map[string]interface{} {
	return map[string]interface{}{
		"situation": map[string]interface{}{
			"datetime":       "2025-03-01T09:00:00+09:00",
			"location":       "办公室",
			"people":         []string{"同事A"},
			"situation_type": "工作",
		},
		"conversation_content": "项目汇报时被当众指出了问题。",
		"emotions": []map[string]interface{}{
			{"type": "joy", "intensity": 3},
			{"type": "sadness", "intensity": 8},
		},
	}
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(&fakeModel{})

	w := doJSON(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzeRejectsEmptyEmotions(t *testing.T) {
	model := &fakeModel{content: validModelResponse}
	r, _ := newTestRouter(model)

	w := doJSON(r, http.MethodPost, "/api/v1/analysis", map[string]interface{}{
		"emotionRecord": map[string]interface{}{
			"conversation_content": "内容",
			"emotions":             []interface{}{},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, model.called, "校验失败时不应触发分析")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Contains(t, body, "message")
}

func TestAnalyzeRejectsMissingContent(t *testing.T) {
	model := &fakeModel{content: validModelResponse}
	r, _ := newTestRouter(model)

	w := doJSON(r, http.MethodPost, "/api/v1/analysis", map[string]interface{}{
		"emotionRecord": map[string]interface{}{
			"emotions": []map[string]interface{}{{"type": "joy", "intensity": 5}},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, model.called)
}

func TestAnalyzeFallbackIsSuccess(t *testing.T) {
	// 外部服务不可用时仍返回200和完整的降级分析
	r, s := newTestRouter(&fakeModel{err: errors.New("connection refused")})

	w := doJSON(r, http.MethodPost, "/api/v1/analysis", map[string]interface{}{
		"emotionRecord": map[string]interface{}{
			"id":                   "unknown-record",
			"conversation_content": "内容",
			"emotions": []map[string]interface{}{
				{"type": "joy", "intensity": 3},
				{"type": "sadness", "intensity": 8},
			},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeEmotionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "fallback", resp.Source)
	assert.Equal(t, models.EmotionSadness, resp.Analysis.PrimaryEmotion)
	assert.Equal(t, "fallback", resp.Analysis.AnalysisMetadata.ModelVersion)
	assert.Len(t, resp.Analysis.AdviceRecommendations, 1)

	// 记录不存在，分析不落库
	analyses, err := s.ListAnalyses()
	require.NoError(t, err)
	assert.Empty(t, analyses)
}

func TestCreateRecordValidation(t *testing.T) {
	r, _ := newTestRouter(&fakeModel{})

	body := createRecordBody()
	body["emotions"] = []map[string]interface{}{{"type": "confused", "intensity": 5}}
	w := doJSON(r, http.MethodPost, "/api/v1/emotions", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = createRecordBody()
	body["emotions"] = []map[string]interface{}{{"type": "joy", "intensity": 11}}
	w = doJSON(r, http.MethodPost, "/api/v1/emotions", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordAnalysisLifecycle(t *testing.T) {
	model := &fakeModel{content: validModelResponse}
	r, s := newTestRouter(model)

	// 创建记录
	w := doJSON(r, http.MethodPost, "/api/v1/emotions", createRecordBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Record models.EmotionRecord `json:"record"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	recordID := created.Record.ID
	require.NotEmpty(t, recordID)
	require.NotEmpty(t, created.Record.CreatedAt)

	// 生成分析
	w = doJSON(r, http.MethodPost, "/api/v1/emotions/"+recordID+"/analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var first models.AnalyzeEmotionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, "model", first.Source)
	assert.Equal(t, recordID, first.Analysis.EmotionRecordID)

	// 重新生成后仍然只有一条分析
	w = doJSON(r, http.MethodPost, "/api/v1/emotions/"+recordID+"/analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var second models.AnalyzeEmotionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.NotEqual(t, first.Analysis.ID, second.Analysis.ID)

	analyses, err := s.ListAnalyses()
	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, second.Analysis.ID, analyses[0].ID)

	// 删除记录后分析仍可按自身ID查到
	w = doJSON(r, http.MethodDelete, "/api/v1/emotions/"+recordID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/emotions/"+recordID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/analyses/"+second.Analysis.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegenerateUnknownRecord(t *testing.T) {
	r, _ := newTestRouter(&fakeModel{content: validModelResponse})

	w := doJSON(r, http.MethodPost, "/api/v1/emotions/missing/analysis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecordAnalysisNotFound(t *testing.T) {
	r, _ := newTestRouter(&fakeModel{})

	w := doJSON(r, http.MethodGet, "/api/v1/emotions/missing/analysis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMeta(t *testing.T) {
	r, _ := newTestRouter(&fakeModel{})

	w := doJSON(r, http.MethodGet, "/api/v1/meta", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "emotionTypes")
	assert.Contains(t, body, "situationTypes")
}

func TestDashboard(t *testing.T) {
	r, _ := newTestRouter(&fakeModel{})

	w := doJSON(r, http.MethodPost, "/api/v1/emotions", createRecordBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalRecords)
	// joy和sadness各出现一次，按枚举顺序取先到的
	assert.Equal(t, models.EmotionJoy, resp.MostFrequentEmotion)
	assert.Equal(t, 1, resp.SituationStats["工作"])
}
