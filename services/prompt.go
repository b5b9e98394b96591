package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/SSY1203/emotion-wise/models"
)

// analysisSchemaJSON 模型输出结构的JSON Schema，进程启动时生成一次
var analysisSchemaJSON = mustGenerateAnalysisSchema()

const analysisPromptTemplate = `你是专业的情绪分析AI。请分析用户的情绪记录，给出准确的情绪分析和有针对性的建议。

待分析的情绪记录：
- 情境：
%s
- 对话/情境内容：%s
- 用户选择的情绪：%s

请返回一个符合以下JSON Schema的JSON对象：

%s

重要要求：
1. primary_emotion 必须是 joy|sadness|anger|fear|surprise|disgust|trust|anticipation 之一
2. triggers 必须是具体、实际的情绪诱因
3. advice_recommendations 最少2条，最多4条
4. 每条建议都要包含可实际执行的具体步骤
5. immediate（立即）、daily（日常）、long_term（长期）三类建议尽量都覆盖到`

// BuildAnalysisPrompt 把一条情绪记录转换成分析提示词。
// 纯函数，不读时钟不产生副作用。
func BuildAnalysisPrompt(record models.EmotionRecord) string {
	situationText := fmt.Sprintf(`时间: %s
地点: %s
同伴: %s
情境类型: %s`,
		record.Situation.Datetime,
		record.Situation.Location,
		strings.Join(record.Situation.People, ", "),
		record.Situation.SituationType,
	)

	emotionParts := make([]string, 0, len(record.Emotions))
	for _, e := range record.Emotions {
		emotionParts = append(emotionParts, fmt.Sprintf("%s: %d/10", e.Type, e.Intensity))
	}
	emotionsText := strings.Join(emotionParts, ", ")

	return fmt.Sprintf(analysisPromptTemplate,
		situationText,
		record.ConversationContent,
		emotionsText,
		analysisSchemaJSON,
	)
}

func mustGenerateAnalysisSchema() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&rawAnalysis{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("生成分析输出Schema失败: %v", err))
	}
	return string(data)
}
