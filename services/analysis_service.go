package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/models"
	"github.com/SSY1203/emotion-wise/utils"
)

var (
	// ErrExternalService 外部模型调用失败（网络错误、非成功状态、空响应）
	ErrExternalService = errors.New("external service error")
	// ErrMalformedResponse 模型响应无法解析为预期结构
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrInvalidEmotionType primary_emotion 不在8种基本情绪之内
	ErrInvalidEmotionType = errors.New("invalid emotion type")
)

const systemPrompt = "你是专业的情绪分析与心理咨询AI。请提供准确且有帮助的分析和建议。"

// AnalysisSource 分析结果的来源
type AnalysisSource string

const (
	SourceModel    AnalysisSource = "model"
	SourceMock     AnalysisSource = "mock"
	SourceFallback AnalysisSource = "fallback"
)

// AnalysisResult 分析结果。Source 区分真实模型结果和降级结果，
// 调用方不必依赖 model_version 哨兵值判断。
type AnalysisResult struct {
	Analysis models.EmotionAnalysis
	Source   AnalysisSource
}

// rawAnalysis 模型返回的原始结构，所有字段都允许缺省，
// 缺省值在归一化时统一填充
type rawAnalysis struct {
	PrimaryEmotion        string      `json:"primary_emotion" jsonschema:"required,enum=joy,enum=sadness,enum=anger,enum=fear,enum=surprise,enum=disgust,enum=trust,enum=anticipation"`
	ConfidenceScore       *float64    `json:"confidence_score,omitempty" jsonschema:"minimum=0,maximum=1"`
	Triggers              []string    `json:"triggers,omitempty"`
	AnalysisSummary       string      `json:"analysis_summary,omitempty"`
	AdviceRecommendations []rawAdvice `json:"advice_recommendations,omitempty"`
}

type rawAdvice struct {
	Type          string   `json:"type,omitempty" jsonschema:"enum=immediate_action,enum=breathing_exercise,enum=mindfulness,enum=physical_activity,enum=cognitive_reframe,enum=social_connection,enum=self_care,enum=professional_help"`
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	Steps         []string `json:"steps,omitempty"`
	Priority      string   `json:"priority,omitempty" jsonschema:"enum=high,enum=medium,enum=low"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
	Category      string   `json:"category,omitempty" jsonschema:"enum=immediate,enum=daily,enum=long_term"`
}

// AnalysisService 情绪分析服务：构建提示词、调用模型、归一化，
// 任一环节失败时降级到本地兜底分析
type AnalysisService struct {
	client  *OpenAIClient
	useMock bool
}

// NewAnalysisService 创建分析服务
func NewAnalysisService(client *OpenAIClient, useMock bool) *AnalysisService {
	return &AnalysisService{
		client:  client,
		useMock: useMock,
	}
}

// AnalyzeEmotion 分析一条情绪记录。对调用方而言是全函数：
// 任何失败都只记录日志并返回降级结果，不向上抛错。
func (s *AnalysisService) AnalyzeEmotion(ctx context.Context, record models.EmotionRecord) AnalysisResult {
	// 防御性前置检查，入口层应当已经拦截
	if record.ConversationContent == "" || len(record.Emotions) == 0 {
		config.Logger.Warnw("情绪记录缺少必填字段，返回降级分析", "recordID", record.ID)
		return AnalysisResult{Analysis: s.buildFallback(record), Source: SourceFallback}
	}

	if s.useMock {
		return AnalysisResult{Analysis: GenerateMockAnalysis(record), Source: SourceMock}
	}

	prompt := BuildAnalysisPrompt(record)

	raw, tokens, err := s.requestAnalysis(ctx, prompt)
	if err != nil {
		config.Logger.Errorw("情绪分析请求失败，返回降级分析",
			"error", err,
			"recordID", record.ID,
		)
		return AnalysisResult{Analysis: s.buildFallback(record), Source: SourceFallback}
	}

	analysis, err := s.normalize(raw, tokens, record)
	if err != nil {
		config.Logger.Errorw("模型响应校验失败，返回降级分析",
			"error", err,
			"recordID", record.ID,
		)
		return AnalysisResult{Analysis: s.buildFallback(record), Source: SourceFallback}
	}

	return AnalysisResult{Analysis: analysis, Source: SourceModel}
}

// requestAnalysis 发起一次模型调用并解析响应，不重试不流式。
// 返回原始分析结构和本次消耗的token数。
func (s *AnalysisService) requestAnalysis(ctx context.Context, prompt string) (rawAnalysis, int, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	options := []llms.CallOption{
		llms.WithMaxTokens(s.client.MaxTokens),
		llms.WithTemperature(s.client.Temperature),
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages, options...)
	if err != nil {
		return rawAnalysis{}, 0, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	if len(response.Choices) == 0 || response.Choices[0].Content == "" {
		return rawAnalysis{}, 0, fmt.Errorf("%w: 模型返回空响应", ErrExternalService)
	}

	choice := response.Choices[0]

	tokens := 0
	if choice.GenerationInfo != nil {
		if v, ok := choice.GenerationInfo["TotalTokens"].(int); ok {
			tokens = v
		}
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(choice.Content), &raw); err != nil {
		return rawAnalysis{}, 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return raw, tokens, nil
}

// normalize 校验原始响应并填充缺省值，产出规范的分析结果。
// primary_emotion 不合法是唯一的致命错误，其余字段缺省时补默认值。
func (s *AnalysisService) normalize(raw rawAnalysis, tokens int, record models.EmotionRecord) (models.EmotionAnalysis, error) {
	if !models.IsValidEmotionType(raw.PrimaryEmotion) {
		return models.EmotionAnalysis{}, fmt.Errorf("%w: %s", ErrInvalidEmotionType, raw.PrimaryEmotion)
	}

	confidence := 0.5
	if raw.ConfidenceScore != nil {
		confidence = math.Min(math.Max(*raw.ConfidenceScore, 0), 1)
	}

	triggers := raw.Triggers
	if triggers == nil {
		triggers = []string{}
	}

	advices := make([]models.AdviceRecommendation, 0, len(raw.AdviceRecommendations))
	for _, rec := range raw.AdviceRecommendations {
		advice := models.AdviceRecommendation{
			ID:            utils.GenerateID(),
			Type:          models.AdviceType(rec.Type),
			Title:         rec.Title,
			Description:   rec.Description,
			Steps:         rec.Steps,
			Priority:      models.AdvicePriority(rec.Priority),
			EstimatedTime: rec.EstimatedTime,
			Category:      models.AdviceCategory(rec.Category),
		}
		if advice.Type == "" {
			advice.Type = models.AdviceMindfulness
		}
		if advice.Title == "" {
			advice.Title = "基本建议"
		}
		if advice.Steps == nil {
			advice.Steps = []string{}
		}
		if advice.Priority == "" {
			advice.Priority = models.PriorityMedium
		}
		if advice.EstimatedTime == "" {
			advice.EstimatedTime = "10-15分钟"
		}
		if advice.Category == "" {
			advice.Category = models.CategoryImmediate
		}
		advices = append(advices, advice)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return models.EmotionAnalysis{
		ID:                    utils.GenerateID(),
		EmotionRecordID:       record.ID,
		PrimaryEmotion:        models.EmotionType(raw.PrimaryEmotion),
		Triggers:              triggers,
		ConfidenceScore:       confidence,
		AdviceRecommendations: advices,
		AnalysisMetadata: models.AnalysisMetadata{
			ProcessingTime: tokens,
			ModelVersion:   s.client.Model,
			AnalysisDate:   now,
		},
		CreatedAt: now,
	}, nil
}

// buildFallback 不依赖网络的兜底分析，永远成功。
// 主情绪取记录中强度最高的情绪，强度相同时取先出现的一个。
func (s *AnalysisService) buildFallback(record models.EmotionRecord) models.EmotionAnalysis {
	primaryEmotion := models.EmotionJoy
	if highest, ok := record.HighestIntensityEmotion(); ok {
		primaryEmotion = highest.Type
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return models.EmotionAnalysis{
		ID:              utils.GenerateID(),
		EmotionRecordID: record.ID,
		PrimaryEmotion:  primaryEmotion,
		Triggers:        []string{"情绪分析过程中发生错误"},
		ConfidenceScore: 0.5,
		AdviceRecommendations: []models.AdviceRecommendation{
			{
				ID:          utils.GenerateID(),
				Type:        models.AdviceMindfulness,
				Title:       "正念呼吸",
				Description: "通过深呼吸把注意力带回当下。",
				Steps: []string{
					"以舒适的姿势坐好",
					"用4秒缓慢吸气",
					"屏住呼吸4秒",
					"用6秒缓慢呼气",
					"重复5-10次",
				},
				Priority:      models.PriorityHigh,
				EstimatedTime: "5-10分钟",
				Category:      models.CategoryImmediate,
			},
		},
		AnalysisMetadata: models.AnalysisMetadata{
			ProcessingTime: 0,
			ModelVersion:   "fallback",
			AnalysisDate:   now,
		},
		CreatedAt: now,
	}
}
