package models

// AnalyzeEmotionResponse 情绪分析响应结构体
type AnalyzeEmotionResponse struct {
	Success  bool            `json:"success"`
	Analysis EmotionAnalysis `json:"analysis"`
	Source   string          `json:"source"` // model, mock, fallback
}

// EmotionStat 单一情绪的统计信息
type EmotionStat struct {
	Count            int     `json:"count"`
	AverageIntensity float64 `json:"averageIntensity"`
}

// DashboardResponse 仪表盘统计响应结构体
type DashboardResponse struct {
	TotalRecords        int                         `json:"totalRecords"`
	EmotionStats        map[EmotionType]EmotionStat `json:"emotionStats"`
	MostFrequentEmotion EmotionType                 `json:"mostFrequentEmotion"`
	AverageIntensity    float64                     `json:"averageIntensity"`
	SituationStats      map[string]int              `json:"situationStats"`
}
