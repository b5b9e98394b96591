package store

import (
	"errors"
	"sync"

	"github.com/SSY1203/emotion-wise/models"
)

// ErrNotFound 查询对象不存在
var ErrNotFound = errors.New("not found")

// Collections 底层集合存储接口，按整集合读写。
// 两个集合相互独立：情绪记录和分析结果。
type Collections interface {
	ListRecords() ([]models.EmotionRecord, error)
	ReplaceRecords(records []models.EmotionRecord) error
	ListAnalyses() ([]models.EmotionAnalysis, error)
	ReplaceAnalyses(analyses []models.EmotionAnalysis) error
	Close() error
}

// Store 在 Collections 之上提供记录和分析的操作。
// 进程内用互斥锁串行化读改写，跨进程的并发写仍是后写覆盖。
type Store struct {
	collections Collections
	mu          sync.Mutex
}

// NewStore 创建Store
func NewStore(collections Collections) *Store {
	return &Store{collections: collections}
}

// AppendRecord 追加一条情绪记录，最新的排在最前
func (s *Store) AppendRecord(record models.EmotionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.collections.ListRecords()
	if err != nil {
		return err
	}
	records = append([]models.EmotionRecord{record}, records...)
	return s.collections.ReplaceRecords(records)
}

// GetRecord 按ID查询情绪记录
func (s *Store) GetRecord(id string) (models.EmotionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.collections.ListRecords()
	if err != nil {
		return models.EmotionRecord{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.EmotionRecord{}, ErrNotFound
}

// ListRecords 返回全部情绪记录
func (s *Store) ListRecords() ([]models.EmotionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collections.ListRecords()
}

// DeleteRecord 删除情绪记录。已生成的分析结果不级联删除。
func (s *Store) DeleteRecord(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.collections.ListRecords()
	if err != nil {
		return err
	}
	kept := make([]models.EmotionRecord, 0, len(records))
	found := false
	for _, r := range records {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrNotFound
	}
	return s.collections.ReplaceRecords(kept)
}

// SaveAnalysis 按 emotion_record_id 覆盖保存分析结果，
// 保证每条记录最多只有一条分析。
func (s *Store) SaveAnalysis(analysis models.EmotionAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	analyses, err := s.collections.ListAnalyses()
	if err != nil {
		return err
	}
	kept := make([]models.EmotionAnalysis, 0, len(analyses)+1)
	for _, a := range analyses {
		if a.EmotionRecordID == analysis.EmotionRecordID {
			continue
		}
		kept = append(kept, a)
	}
	kept = append(kept, analysis)
	return s.collections.ReplaceAnalyses(kept)
}

// GetAnalysisByRecord 查询某条记录当前的分析结果
func (s *Store) GetAnalysisByRecord(recordID string) (models.EmotionAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analyses, err := s.collections.ListAnalyses()
	if err != nil {
		return models.EmotionAnalysis{}, err
	}
	for _, a := range analyses {
		if a.EmotionRecordID == recordID {
			return a, nil
		}
	}
	return models.EmotionAnalysis{}, ErrNotFound
}

// GetAnalysis 按分析自身ID查询。记录被删除后分析仍可查到。
func (s *Store) GetAnalysis(id string) (models.EmotionAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analyses, err := s.collections.ListAnalyses()
	if err != nil {
		return models.EmotionAnalysis{}, err
	}
	for _, a := range analyses {
		if a.ID == id {
			return a, nil
		}
	}
	return models.EmotionAnalysis{}, ErrNotFound
}

// ListAnalyses 返回全部分析结果
func (s *Store) ListAnalyses() ([]models.EmotionAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collections.ListAnalyses()
}

// Close 关闭底层存储
func (s *Store) Close() error {
	return s.collections.Close()
}
