package models

import (
	"fmt"
)

// AnalyzeEmotionRequest 情绪分析请求结构体
type AnalyzeEmotionRequest struct {
	EmotionRecord *EmotionRecord `json:"emotionRecord" binding:"required"`
}

// Validate 校验分析请求的必填字段
func (r *AnalyzeEmotionRequest) Validate() error {
	if r.EmotionRecord == nil {
		return fmt.Errorf("emotionRecord is required")
	}
	if r.EmotionRecord.ConversationContent == "" {
		return fmt.Errorf("conversation_content is required")
	}
	if len(r.EmotionRecord.Emotions) == 0 {
		return fmt.Errorf("emotions must not be empty")
	}
	return nil
}

// CreateEmotionRecordRequest 创建情绪记录请求结构体
type CreateEmotionRecordRequest struct {
	Situation           SituationInfo  `json:"situation"`
	ConversationContent string         `json:"conversation_content" binding:"required"`
	Emotions            []EmotionState `json:"emotions" binding:"required"`
}

// Validate 校验创建请求
func (r *CreateEmotionRecordRequest) Validate() error {
	if r.Situation.Location == "" {
		return fmt.Errorf("situation.location is required")
	}
	if r.ConversationContent == "" {
		return fmt.Errorf("conversation_content is required")
	}
	if len(r.Emotions) == 0 {
		return fmt.Errorf("emotions must not be empty")
	}
	for _, e := range r.Emotions {
		if !IsValidEmotionType(string(e.Type)) {
			return fmt.Errorf("invalid emotion type: %s", e.Type)
		}
		if e.Intensity < 1 || e.Intensity > 10 {
			return fmt.Errorf("emotion intensity must be between 1 and 10")
		}
	}
	return nil
}

// ToRecord 构造情绪记录，id 和 created_at 由调用方填充。
// people 去重，保持首次出现的顺序。
func (r *CreateEmotionRecordRequest) ToRecord() EmotionRecord {
	seen := make(map[string]bool)
	var people []string
	for _, p := range r.Situation.People {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		people = append(people, p)
	}

	return EmotionRecord{
		Situation: SituationInfo{
			Datetime:      r.Situation.Datetime,
			Location:      r.Situation.Location,
			People:        people,
			SituationType: r.Situation.SituationType,
		},
		ConversationContent: r.ConversationContent,
		Emotions:            r.Emotions,
	}
}
