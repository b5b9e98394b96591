package models

// EmotionAnalysis 情绪分析结果模型
type EmotionAnalysis struct {
	ID                    string                 `json:"id"`
	EmotionRecordID       string                 `json:"emotion_record_id"`
	PrimaryEmotion        EmotionType            `json:"primary_emotion"`
	Triggers              []string               `json:"triggers"`
	ConfidenceScore       float64                `json:"confidence_score"` // 0-1
	AdviceRecommendations []AdviceRecommendation `json:"advice_recommendations"`
	AnalysisMetadata      AnalysisMetadata       `json:"analysis_metadata"`
	CreatedAt             string                 `json:"created_at"`
}

// AnalysisMetadata 分析元数据
type AnalysisMetadata struct {
	ProcessingTime int    `json:"processing_time"` // 模型分析时为token数，降级时为0
	ModelVersion   string `json:"model_version"`
	AnalysisDate   string `json:"analysis_date"`
}

// AdviceRecommendation 单条建议
type AdviceRecommendation struct {
	ID            string         `json:"id"`
	Type          AdviceType     `json:"type"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Steps         []string       `json:"steps"`
	Priority      AdvicePriority `json:"priority"`
	EstimatedTime string         `json:"estimated_time"`
	Category      AdviceCategory `json:"category"`
}

// AdviceType 建议类型
type AdviceType string

const (
	AdviceImmediateAction  AdviceType = "immediate_action"
	AdviceBreathing        AdviceType = "breathing_exercise"
	AdviceMindfulness      AdviceType = "mindfulness"
	AdvicePhysicalActivity AdviceType = "physical_activity"
	AdviceCognitiveReframe AdviceType = "cognitive_reframe"
	AdviceSocialConnection AdviceType = "social_connection"
	AdviceSelfCare         AdviceType = "self_care"
	AdviceProfessionalHelp AdviceType = "professional_help"
)

// AdvicePriority 建议优先级
type AdvicePriority string

const (
	PriorityHigh   AdvicePriority = "high"
	PriorityMedium AdvicePriority = "medium"
	PriorityLow    AdvicePriority = "low"
)

// AdviceCategory 建议分类，决定前端展示的分组
type AdviceCategory string

const (
	CategoryImmediate AdviceCategory = "immediate"
	CategoryDaily     AdviceCategory = "daily"
	CategoryLongTerm  AdviceCategory = "long_term"
)

// AdviceTypeLabels 建议类型的展示名称
var AdviceTypeLabels = map[AdviceType]string{
	AdviceImmediateAction:  "立即行动",
	AdviceBreathing:        "呼吸练习",
	AdviceMindfulness:      "正念练习",
	AdvicePhysicalActivity: "身体活动",
	AdviceCognitiveReframe: "认知重构",
	AdviceSocialConnection: "社交联结",
	AdviceSelfCare:         "自我关怀",
	AdviceProfessionalHelp: "专业帮助",
}

// AdviceCategoryLabels 建议分类的展示名称
var AdviceCategoryLabels = map[AdviceCategory]string{
	CategoryImmediate: "立即适用",
	CategoryDaily:     "日常管理",
	CategoryLongTerm:  "长期策略",
}
