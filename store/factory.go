package store

import (
	"fmt"
	"strings"

	"github.com/SSY1203/emotion-wise/config"
)

const (
	DriverMemory = "memory"
	DriverJSON   = "json"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
)

// NewByDriver 根据配置的存储驱动创建Store。
// redis 和 mysql 驱动要求对应的客户端已初始化。
func NewByDriver(conf config.Config) (*Store, error) {
	switch strings.ToLower(strings.TrimSpace(conf.StoreDriver)) {
	case DriverMemory:
		return NewStore(NewMemoryCollections()), nil
	case "", DriverJSON:
		collections, err := NewJSONCollections(conf.DataDir)
		if err != nil {
			return nil, err
		}
		return NewStore(collections), nil
	case DriverRedis:
		if err := config.InitRedis(conf); err != nil {
			return nil, err
		}
		return NewStore(NewRedisCollections(config.RedisClient)), nil
	case DriverMySQL:
		if err := config.InitDB(conf); err != nil {
			return nil, err
		}
		collections, err := NewMySQLCollections(config.DB)
		if err != nil {
			return nil, err
		}
		return NewStore(collections), nil
	default:
		return nil, fmt.Errorf("不支持的存储驱动: %s", conf.StoreDriver)
	}
}
