package services

import (
	"math/rand"
	"time"

	"github.com/SSY1203/emotion-wise/models"
	"github.com/SSY1203/emotion-wise/utils"
)

// mockTriggers 各情绪的典型诱因
var mockTriggers = map[models.EmotionType][]string{
	models.EmotionJoy: {
		"达成目标的成就感",
		"积极的人际交往体验",
		"比预期更好的结果",
	},
	models.EmotionSadness: {
		"结果与期待之间的落差",
		"重要关系中的失望",
		"对过往经历的回想",
	},
	models.EmotionAnger: {
		"感到受到了不公平的对待",
		"沟通上的困难",
		"对方的反应和预想不同",
	},
	models.EmotionFear: {
		"对不确定未来的担忧",
		"必须做出重要决定的压力",
		"过去类似经历留下的负面记忆",
	},
	models.EmotionSurprise: {
		"突发的意外状况",
		"获得了新的信息",
		"事情的发展偏离了计划",
	},
	models.EmotionDisgust: {
		"与自身价值观相悖的情况",
		"感到不合理的对待",
		"期待与现实的落差",
	},
	models.EmotionTrust: {
		"看到了对方真诚的一面",
		"承诺被兑现的经历",
		"彼此理解的加深",
	},
	models.EmotionAnticipation: {
		"对积极变化的期待",
		"发现了新的机会",
		"对目标有了清晰的愿景",
	},
}

// mockAdvice 各情绪的预置建议
var mockAdvice = map[models.EmotionType][]models.AdviceRecommendation{
	models.EmotionJoy: {
		{
			Type:        models.AdviceImmediateAction,
			Title:       "扩散积极能量",
			Description: "把当下的喜悦分享给他人，获得更大的满足感。",
			Steps: []string{
				"把好消息分享给亲近的人",
				"表达感谢之情",
				"把这一刻记录下来",
			},
			Priority:      models.PriorityHigh,
			EstimatedTime: "5-10分钟",
			Category:      models.CategoryImmediate,
		},
		{
			Type:        models.AdviceMindfulness,
			Title:       "写感恩日记",
			Description: "每天记录值得感恩的事情，保持积极心态。",
			Steps: []string{
				"写下今天感恩的3件事",
				"想一想它们为什么有意义",
				"写下对明天的一个期待",
			},
			Priority:      models.PriorityMedium,
			EstimatedTime: "10-15分钟",
			Category:      models.CategoryDaily,
		},
	},
	models.EmotionSadness: {
		{
			Type:        models.AdviceSelfCare,
			Title:       "接纳情绪",
			Description: "不要压抑悲伤，给自己一段自然接纳它的时间。",
			Steps: []string{
				"在安静的空间里感受情绪",
				"想哭就让自己哭出来",
				"喝一杯温热的饮品",
				"听喜欢的音乐",
			},
			Priority:      models.PriorityHigh,
			EstimatedTime: "20-30分钟",
			Category:      models.CategoryImmediate,
		},
		{
			Type:        models.AdviceSocialConnection,
			Title:       "利用支持网络",
			Description: "和信任的人聊一聊，把情绪说出来。",
			Steps: []string{
				"联系可以信赖的朋友或家人",
				"坦率地表达当前的感受",
				"请对方倾听而不是给建议",
			},
			Priority:      models.PriorityHigh,
			EstimatedTime: "30-60分钟",
			Category:      models.CategoryDaily,
		},
	},
	models.EmotionAnger: {
		{
			Type:        models.AdviceBreathing,
			Title:       "愤怒平复呼吸法",
			Description: "通过深呼吸立即降低愤怒的强度。",
			Steps: []string{
				"用鼻子缓慢吸气4秒",
				"屏住呼吸4秒",
				"用嘴缓慢呼气6秒",
				"重复5-10次",
			},
			Priority:      models.PriorityHigh,
			EstimatedTime: "5-10分钟",
			Category:      models.CategoryImmediate,
		},
		{
			Type:        models.AdvicePhysicalActivity,
			Title:       "能量转换运动",
			Description: "把愤怒的能量转化为建设性的身体活动。",
			Steps: []string{
				"快走10-15分钟",
				"上下楼梯",
				"做简单的拉伸或瑜伽",
				"观察运动后情绪的变化",
			},
			Priority:      models.PriorityMedium,
			EstimatedTime: "15-30分钟",
			Category:      models.CategoryDaily,
		},
	},
	models.EmotionFear: {
		{
			Type:        models.AdviceMindfulness,
			Title:       "回到当下",
			Description: "从对未来的担忧中抽离，专注于此时此刻。",
			Steps: []string{
				"观察周围5样看得见的东西",
				"辨认4种听得到的声音",
				"感受3样摸得到的东西",
				"深呼吸，停留在当下",
			},
			Priority:      models.PriorityHigh,
			EstimatedTime: "10-15分钟",
			Category:      models.CategoryImmediate,
		},
		{
			Type:        models.AdviceCognitiveReframe,
			Title:       "写担忧日记",
			Description: "具体分析担忧的内容并制定应对方案。",
			Steps: []string{
				"把担心的情况具体写下来",
				"客观评估它实际发生的概率",
				"写出最坏和最好的两种情形",
				"为每种情形准备应对方案",
			},
			Priority:      models.PriorityMedium,
			EstimatedTime: "20-30分钟",
			Category:      models.CategoryLongTerm,
		},
	},
	models.EmotionSurprise: {
		{
			Type:        models.AdviceMindfulness,
			Title:       "接受现状",
			Description: "给自己一点时间接受并适应意外的状况。",
			Steps: []string{
				"做几次深呼吸让心情平稳",
				"如实接受发生的事情",
				"想想这是否可能成为新的机会",
			},
			Priority:      models.PriorityMedium,
			EstimatedTime: "10-15分钟",
			Category:      models.CategoryImmediate,
		},
	},
	models.EmotionDisgust: {
		{
			Type:        models.AdviceCognitiveReframe,
			Title:       "重新评估处境",
			Description: "换一个角度看待让自己不适的情况。",
			Steps: []string{
				"找出这件事里可以学到的东西",
				"把它当作理清自身价值观的机会",
				"思考有哪些建设性的改变方式",
			},
			Priority:      models.PriorityMedium,
			EstimatedTime: "15-20分钟",
			Category:      models.CategoryImmediate,
		},
	},
	models.EmotionTrust: {
		{
			Type:        models.AdviceSocialConnection,
			Title:       "加深关系",
			Description: "以信任感为基础，让这段关系更进一步。",
			Steps: []string{
				"向对方表达感谢",
				"进行更深入的交流",
				"计划可以一起做的事情",
			},
			Priority:      models.PriorityHigh,
			EstimatedTime: "30分钟-1小时",
			Category:      models.CategoryImmediate,
		},
	},
	models.EmotionAnticipation: {
		{
			Type:        models.AdviceImmediateAction,
			Title:       "把目标具体化",
			Description: "把期待转化成具体的行动计划。",
			Steps: []string{
				"明确定义期待的事情",
				"制定分步骤的实现计划",
				"开始执行第一步",
			},
			Priority:      models.PriorityHigh,
			EstimatedTime: "20-30分钟",
			Category:      models.CategoryImmediate,
		},
	},
}

// GenerateMockAnalysis 生成本地Mock分析结果，不访问网络。
// 用于开发环境或未配置API Key的场景。
func GenerateMockAnalysis(record models.EmotionRecord) models.EmotionAnalysis {
	primaryEmotion := models.EmotionJoy
	if highest, ok := record.HighestIntensityEmotion(); ok {
		primaryEmotion = highest.Type
	}

	triggers := mockTriggers[primaryEmotion]
	if triggers == nil {
		triggers = []string{"未能找到明确的诱因"}
	}
	// 取1-2个诱因
	count := rand.Intn(2) + 1
	if count > len(triggers) {
		count = len(triggers)
	}
	picked := make([]string, count)
	copy(picked, triggers[:count])

	advices := make([]models.AdviceRecommendation, 0, len(mockAdvice[primaryEmotion]))
	for _, advice := range mockAdvice[primaryEmotion] {
		advice.ID = utils.GenerateID()
		advices = append(advices, advice)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return models.EmotionAnalysis{
		ID:                    utils.GenerateID(),
		EmotionRecordID:       record.ID,
		PrimaryEmotion:        primaryEmotion,
		Triggers:              picked,
		ConfidenceScore:       0.85 + rand.Float64()*0.15,
		AdviceRecommendations: advices,
		AnalysisMetadata: models.AnalysisMetadata{
			ProcessingTime: rand.Intn(2000) + 1000, // 模拟1-3秒
			ModelVersion:   "EmotionAI-v2.1",
			AnalysisDate:   now,
		},
		CreatedAt: now,
	}
}
