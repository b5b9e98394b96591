package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/SSY1203/emotion-wise/config"
	"github.com/SSY1203/emotion-wise/models"
)

const (
	recordsKey  = "emotionRecords"
	analysesKey = "emotionAnalyses"
)

// RedisCollections Redis集合存储，每个集合是一个键下的JSON字符串
type RedisCollections struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCollections 创建Redis存储
func NewRedisCollections(client *redis.Client) *RedisCollections {
	return &RedisCollections{
		client: client,
		ctx:    context.Background(),
	}
}

func (r *RedisCollections) ListRecords() ([]models.EmotionRecord, error) {
	var records []models.EmotionRecord
	if err := r.readCollection(recordsKey, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RedisCollections) ReplaceRecords(records []models.EmotionRecord) error {
	return r.writeCollection(recordsKey, records)
}

func (r *RedisCollections) ListAnalyses() ([]models.EmotionAnalysis, error) {
	var analyses []models.EmotionAnalysis
	if err := r.readCollection(analysesKey, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

func (r *RedisCollections) ReplaceAnalyses(analyses []models.EmotionAnalysis) error {
	return r.writeCollection(analysesKey, analyses)
}

func (r *RedisCollections) Close() error {
	return r.client.Close()
}

// readCollection 读取整个集合。键不存在或内容损坏时按空集合处理。
func (r *RedisCollections) readCollection(key string, v interface{}) error {
	data, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		config.Logger.Warnw("集合内容损坏，按空集合处理", "key", key, "error", err)
	}
	return nil
}

// writeCollection 整体写回集合
func (r *RedisCollections) writeCollection(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, key, string(data), 0).Err()
}
