package services

import (
	"github.com/SSY1203/emotion-wise/models"
)

// ComputeDashboard 汇总情绪记录的统计信息：
// 总记录数、各情绪出现次数与平均强度、最高频情绪、总体平均强度、各情境类型计数
func ComputeDashboard(records []models.EmotionRecord) models.DashboardResponse {
	type accumulator struct {
		count          int
		totalIntensity int
	}

	emotionAcc := make(map[models.EmotionType]*accumulator)
	situationStats := make(map[string]int)

	totalCount := 0
	totalIntensity := 0

	for _, record := range records {
		for _, emotion := range record.Emotions {
			acc, ok := emotionAcc[emotion.Type]
			if !ok {
				acc = &accumulator{}
				emotionAcc[emotion.Type] = acc
			}
			acc.count++
			acc.totalIntensity += emotion.Intensity
			totalCount++
			totalIntensity += emotion.Intensity
		}
		if record.Situation.SituationType != "" {
			situationStats[record.Situation.SituationType]++
		}
	}

	emotionStats := make(map[models.EmotionType]models.EmotionStat, len(emotionAcc))
	var mostFrequent models.EmotionType
	mostFrequentCount := 0
	// 按固定枚举顺序遍历，保证次数相同时结果稳定
	for _, t := range models.EmotionTypes {
		acc, ok := emotionAcc[t]
		if !ok {
			continue
		}
		emotionStats[t] = models.EmotionStat{
			Count:            acc.count,
			AverageIntensity: float64(acc.totalIntensity) / float64(acc.count),
		}
		if acc.count > mostFrequentCount {
			mostFrequentCount = acc.count
			mostFrequent = t
		}
	}

	averageIntensity := 0.0
	if totalCount > 0 {
		averageIntensity = float64(totalIntensity) / float64(totalCount)
	}

	return models.DashboardResponse{
		TotalRecords:        len(records),
		EmotionStats:        emotionStats,
		MostFrequentEmotion: mostFrequent,
		AverageIntensity:    averageIntensity,
		SituationStats:      situationStats,
	}
}
