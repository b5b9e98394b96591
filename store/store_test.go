package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/models"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

func sampleRecord(id string) models.EmotionRecord {
	return models.EmotionRecord{
		ID: id,
		Situation: models.SituationInfo{
			Datetime:      "2025-03-01T09:00:00+09:00",
			Location:      "家里",
			People:        []string{"妈妈"},
			SituationType: "家庭",
		},
		ConversationContent: "和家人聊了很久，心情放松了不少。",
		Emotions: []models.EmotionState{
			{Type: models.EmotionTrust, Intensity: 7},
		},
		CreatedAt: "2025-03-01T10:00:00Z",
	}
}

func sampleAnalysis(id, recordID string) models.EmotionAnalysis {
	return models.EmotionAnalysis{
		ID:              id,
		EmotionRecordID: recordID,
		PrimaryEmotion:  models.EmotionTrust,
		Triggers:        []string{"家人的支持"},
		ConfidenceScore: 0.9,
		AdviceRecommendations: []models.AdviceRecommendation{
			{
				ID:            "advice-1",
				Type:          models.AdviceSocialConnection,
				Title:         "加深关系",
				Steps:         []string{"表达感谢"},
				Priority:      models.PriorityHigh,
				EstimatedTime: "30分钟",
				Category:      models.CategoryImmediate,
			},
		},
		AnalysisMetadata: models.AnalysisMetadata{
			ProcessingTime: 100,
			ModelVersion:   "gpt-4o",
			AnalysisDate:   "2025-03-01T10:01:00Z",
		},
		CreatedAt: "2025-03-01T10:01:00Z",
	}
}

// 两种无外部依赖的后端跑同一组测试
func storeBackends(t *testing.T) map[string]*Store {
	jsonCollections, err := NewJSONCollections(t.TempDir())
	require.NoError(t, err)

	return map[string]*Store{
		"memory": NewStore(NewMemoryCollections()),
		"json":   NewStore(jsonCollections),
	}
}

func TestRecordRoundTrip(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			record := sampleRecord("r1")
			require.NoError(t, s.AppendRecord(record))

			got, err := s.GetRecord("r1")
			require.NoError(t, err)
			assert.Equal(t, record, got)
		})
	}
}

func TestListRecordsNewestFirst(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.AppendRecord(sampleRecord("r1")))
			require.NoError(t, s.AppendRecord(sampleRecord("r2")))

			records, err := s.ListRecords()
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "r2", records[0].ID)
			assert.Equal(t, "r1", records[1].ID)
		})
	}
}

func TestGetRecordNotFound(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.GetRecord("missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestDeleteRecordKeepsAnalysis(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.AppendRecord(sampleRecord("r1")))
			require.NoError(t, s.SaveAnalysis(sampleAnalysis("a1", "r1")))

			require.NoError(t, s.DeleteRecord("r1"))

			records, err := s.ListRecords()
			require.NoError(t, err)
			assert.Empty(t, records)

			// 分析结果不级联删除，仍可按自身ID查到
			analysis, err := s.GetAnalysis("a1")
			require.NoError(t, err)
			assert.Equal(t, "r1", analysis.EmotionRecordID)
		})
	}
}

func TestDeleteRecordNotFound(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.DeleteRecord("missing"), ErrNotFound)
		})
	}
}

func TestSaveAnalysisReplacesByRecordID(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SaveAnalysis(sampleAnalysis("a1", "r1")))
			require.NoError(t, s.SaveAnalysis(sampleAnalysis("a2", "r1")))
			require.NoError(t, s.SaveAnalysis(sampleAnalysis("a3", "r2")))

			analyses, err := s.ListAnalyses()
			require.NoError(t, err)
			require.Len(t, analyses, 2)

			// 每条记录最多一条分析，重新生成的覆盖旧的
			got, err := s.GetAnalysisByRecord("r1")
			require.NoError(t, err)
			assert.Equal(t, "a2", got.ID)

			_, err = s.GetAnalysis("a1")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestJSONCollectionsCorruptFileFailsSoft(t *testing.T) {
	dir := t.TempDir()
	collections, err := NewJSONCollections(dir)
	require.NoError(t, err)
	s := NewStore(collections)

	require.NoError(t, s.AppendRecord(sampleRecord("r1")))

	// 损坏集合文件后按空集合处理，不报错
	require.NoError(t, os.WriteFile(filepath.Join(dir, recordsFile), []byte("{broken"), 0o644))

	records, err := s.ListRecords()
	require.NoError(t, err)
	assert.Empty(t, records)

	// 损坏之后仍可正常写入
	require.NoError(t, s.AppendRecord(sampleRecord("r2")))
	records, err = s.ListRecords()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestJSONCollectionsPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	collections, err := NewJSONCollections(dir)
	require.NoError(t, err)
	s := NewStore(collections)
	require.NoError(t, s.AppendRecord(sampleRecord("r1")))
	require.NoError(t, s.Close())

	reopened, err := NewJSONCollections(dir)
	require.NoError(t, err)
	s2 := NewStore(reopened)

	got, err := s2.GetRecord("r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
}
