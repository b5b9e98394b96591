package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// InitRedis 初始化Redis客户端，仅在 STORE_DRIVER=redis 时调用
func InitRedis(config Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	// 测试连接
	_, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		return fmt.Errorf("Redis连接测试失败: %v", err)
	}

	return nil
}
