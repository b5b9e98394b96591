package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 存储配置：memory, json, redis, mysql
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	DataDir     string `mapstructure:"DATA_DIR"`

	// 数据库配置（STORE_DRIVER=mysql 时使用）
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis配置（STORE_DRIVER=redis 时使用）
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// OpenAI API配置
	OpenAIAPIKey      string  `mapstructure:"OPENAI_API_KEY"`
	OpenAIAPIEndpoint string  `mapstructure:"OPENAI_API_ENDPOINT"`
	OpenAIModel       string  `mapstructure:"OPENAI_MODEL"`
	OpenAIMaxTokens   int     `mapstructure:"OPENAI_MAX_TOKENS"`
	OpenAITemperature float64 `mapstructure:"OPENAI_TEMPERATURE"`

	// 是否使用本地Mock分析（无需API Key）
	UseMockAI bool `mapstructure:"USE_MOCK_AI"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STORE_DRIVER", "json")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("OPENAI_MAX_TOKENS", 1500)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString 返回数据库连接字符串
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
