package store

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/models"
)

// recordRow 情绪记录表的行，整条记录以JSON文档存储
type recordRow struct {
	Pos int    `gorm:"primaryKey;autoIncrement:false"`
	ID  string `gorm:"type:varchar(50);index"`
	Doc string `gorm:"type:text"`
}

func (recordRow) TableName() string {
	return "emotion_records"
}

// analysisRow 分析结果表的行
type analysisRow struct {
	Pos int    `gorm:"primaryKey;autoIncrement:false"`
	ID  string `gorm:"type:varchar(50);index"`
	Doc string `gorm:"type:text"`
}

func (analysisRow) TableName() string {
	return "emotion_analyses"
}

// MySQLCollections 数据库集合存储。整集合替换在事务内先清空再批量写入。
type MySQLCollections struct {
	db *gorm.DB
}

// NewMySQLCollections 创建数据库存储并迁移表结构
func NewMySQLCollections(db *gorm.DB) (*MySQLCollections, error) {
	if err := db.AutoMigrate(&recordRow{}, &analysisRow{}); err != nil {
		return nil, err
	}
	return &MySQLCollections{db: db}, nil
}

func (m *MySQLCollections) ListRecords() ([]models.EmotionRecord, error) {
	var rows []recordRow
	if err := m.db.Order("pos").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]models.EmotionRecord, 0, len(rows))
	for _, row := range rows {
		var record models.EmotionRecord
		if err := json.Unmarshal([]byte(row.Doc), &record); err != nil {
			config.Logger.Warnw("情绪记录文档损坏，已跳过", "id", row.ID, "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (m *MySQLCollections) ReplaceRecords(records []models.EmotionRecord) error {
	rows := make([]recordRow, 0, len(records))
	for i, record := range records {
		doc, err := json.Marshal(record)
		if err != nil {
			return err
		}
		rows = append(rows, recordRow{Pos: i, ID: record.ID, Doc: string(doc)})
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM emotion_records").Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (m *MySQLCollections) ListAnalyses() ([]models.EmotionAnalysis, error) {
	var rows []analysisRow
	if err := m.db.Order("pos").Find(&rows).Error; err != nil {
		return nil, err
	}

	analyses := make([]models.EmotionAnalysis, 0, len(rows))
	for _, row := range rows {
		var analysis models.EmotionAnalysis
		if err := json.Unmarshal([]byte(row.Doc), &analysis); err != nil {
			config.Logger.Warnw("分析结果文档损坏，已跳过", "id", row.ID, "error", err)
			continue
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

func (m *MySQLCollections) ReplaceAnalyses(analyses []models.EmotionAnalysis) error {
	rows := make([]analysisRow, 0, len(analyses))
	for i, analysis := range analyses {
		doc, err := json.Marshal(analysis)
		if err != nil {
			return err
		}
		rows = append(rows, analysisRow{Pos: i, ID: analysis.ID, Doc: string(doc)})
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM emotion_analyses").Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (m *MySQLCollections) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
