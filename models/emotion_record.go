package models

// EmotionRecord 情绪记录模型
type EmotionRecord struct {
	ID                  string         `json:"id"`
	Situation           SituationInfo  `json:"situation"`
	ConversationContent string         `json:"conversation_content"`
	Emotions            []EmotionState `json:"emotions"`
	CreatedAt           string         `json:"created_at"` // ISO8601，创建后不再变更
}

// SituationInfo 情境信息
type SituationInfo struct {
	Datetime      string   `json:"datetime"`
	Location      string   `json:"location"`
	People        []string `json:"people"`
	SituationType string   `json:"situation_type"`
}

// EmotionState 单个情绪及其强度（1-10）
type EmotionState struct {
	Type      EmotionType `json:"type"`
	Intensity int         `json:"intensity"`
}

// EmotionType 情绪类型，固定8种基本情绪
type EmotionType string

const (
	EmotionJoy          EmotionType = "joy"
	EmotionSadness      EmotionType = "sadness"
	EmotionAnger        EmotionType = "anger"
	EmotionFear         EmotionType = "fear"
	EmotionSurprise     EmotionType = "surprise"
	EmotionDisgust      EmotionType = "disgust"
	EmotionTrust        EmotionType = "trust"
	EmotionAnticipation EmotionType = "anticipation"
)

// EmotionTypes 全部合法情绪类型，顺序固定
var EmotionTypes = []EmotionType{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionSurprise,
	EmotionDisgust,
	EmotionTrust,
	EmotionAnticipation,
}

// EmotionLabels 情绪类型的展示名称
var EmotionLabels = map[EmotionType]string{
	EmotionJoy:          "喜悦",
	EmotionSadness:      "悲伤",
	EmotionAnger:        "愤怒",
	EmotionFear:         "恐惧",
	EmotionSurprise:     "惊讶",
	EmotionDisgust:      "厌恶",
	EmotionTrust:        "信任",
	EmotionAnticipation: "期待",
}

// SituationTypes 情境类型选项
var SituationTypes = []string{
	"工作",
	"家庭",
	"朋友",
	"恋爱",
	"学业",
	"健康",
	"爱好",
	"其他",
}

// IsValidEmotionType 校验情绪类型是否在8种基本情绪之内
func IsValidEmotionType(emotion string) bool {
	for _, t := range EmotionTypes {
		if string(t) == emotion {
			return true
		}
	}
	return false
}

// HighestIntensityEmotion 返回强度最高的情绪，强度相同时取先出现的一个。
// emotions 为空时返回 false。
func (r *EmotionRecord) HighestIntensityEmotion() (EmotionState, bool) {
	if len(r.Emotions) == 0 {
		return EmotionState{}, false
	}
	highest := r.Emotions[0]
	for _, e := range r.Emotions[1:] {
		if e.Intensity > highest.Intensity {
			highest = e
		}
	}
	return highest, true
}
