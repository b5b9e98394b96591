package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/SSY1203/emotion-wise/config"
)

// OpenAIClient 封装情绪分析使用的对话模型及生成参数
type OpenAIClient struct {
	Chat        llms.Model
	Model       string
	MaxTokens   int
	Temperature float64
}

// NewOpenAIClient 创建OpenAI客户端，要求模型以 json_object 格式返回
func NewOpenAIClient(conf config.Config) (*OpenAIClient, error) {
	opts := []openai.Option{
		openai.WithToken(conf.OpenAIAPIKey),
		openai.WithModel(conf.OpenAIModel),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	}
	if conf.OpenAIAPIEndpoint != "" {
		opts = append(opts, openai.WithBaseURL(conf.OpenAIAPIEndpoint))
	}

	chat, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIClient{
		Chat:        chat,
		Model:       conf.OpenAIModel,
		MaxTokens:   conf.OpenAIMaxTokens,
		Temperature: conf.OpenAITemperature,
	}, nil
}
