package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/models"
)

const (
	recordsFile  = "emotion_records.json"
	analysesFile = "emotion_analyses.json"
)

// JSONCollections 文件集合存储，每个集合一个JSON文件。
// 每次操作整体读写文件。文件损坏时按空集合处理，不中断调用方。
type JSONCollections struct {
	dataDir string
}

// NewJSONCollections 创建文件存储
func NewJSONCollections(dataDir string) (*JSONCollections, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &JSONCollections{dataDir: dataDir}, nil
}

func (j *JSONCollections) ListRecords() ([]models.EmotionRecord, error) {
	var records []models.EmotionRecord
	j.readCollection(recordsFile, &records)
	return records, nil
}

func (j *JSONCollections) ReplaceRecords(records []models.EmotionRecord) error {
	return j.writeCollection(recordsFile, records)
}

func (j *JSONCollections) ListAnalyses() ([]models.EmotionAnalysis, error) {
	var analyses []models.EmotionAnalysis
	j.readCollection(analysesFile, &analyses)
	return analyses, nil
}

func (j *JSONCollections) ReplaceAnalyses(analyses []models.EmotionAnalysis) error {
	return j.writeCollection(analysesFile, analyses)
}

func (j *JSONCollections) Close() error {
	return nil
}

// readCollection 读取整个集合。文件不存在或内容损坏时保持空集合。
func (j *JSONCollections) readCollection(name string, v interface{}) {
	path := filepath.Join(j.dataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			config.Logger.Warnw("读取集合文件失败，按空集合处理", "file", path, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		config.Logger.Warnw("集合文件内容损坏，按空集合处理", "file", path, "error", err)
	}
}

// writeCollection 整体写回集合，先写临时文件再改名
func (j *JSONCollections) writeCollection(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(j.dataDir, name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
