package store

import (
	"github.com/SSY1203/emotion-wise/models"
)

// MemoryCollections 内存集合存储，用于测试和开发
type MemoryCollections struct {
	records  []models.EmotionRecord
	analyses []models.EmotionAnalysis
}

// NewMemoryCollections 创建内存存储
func NewMemoryCollections() *MemoryCollections {
	return &MemoryCollections{}
}

func (m *MemoryCollections) ListRecords() ([]models.EmotionRecord, error) {
	records := make([]models.EmotionRecord, len(m.records))
	copy(records, m.records)
	return records, nil
}

func (m *MemoryCollections) ReplaceRecords(records []models.EmotionRecord) error {
	m.records = make([]models.EmotionRecord, len(records))
	copy(m.records, records)
	return nil
}

func (m *MemoryCollections) ListAnalyses() ([]models.EmotionAnalysis, error) {
	analyses := make([]models.EmotionAnalysis, len(m.analyses))
	copy(analyses, m.analyses)
	return analyses, nil
}

func (m *MemoryCollections) ReplaceAnalyses(analyses []models.EmotionAnalysis) error {
	m.analyses = make([]models.EmotionAnalysis, len(analyses))
	copy(m.analyses, analyses)
	return nil
}

func (m *MemoryCollections) Close() error {
	return nil
}
