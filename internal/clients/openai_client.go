package clients

import (
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests

	DefaultSummaryModel = openai.GPT4oMini
)

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
)

type OpenAIClient struct {
	Client *openai.Client
	Model  string
}

func GetOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
		panic("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
	}
	openAIOnce.Do(func() {
		config := openai.DefaultConfig(apiKey)
		config.HTTPClient = &http.Client{
			Timeout: openAIRequestTimeout,
		}

		model := os.Getenv("OPENAI_SUMMARY_MODEL")
		if model == "" {
			model = DefaultSummaryModel
		}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClientWithConfig(config),
			Model:  model,
		}
		slog.Info("[OpenAIClient] OpenAI client initialized",
			slog.String("model", model),
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance
}
