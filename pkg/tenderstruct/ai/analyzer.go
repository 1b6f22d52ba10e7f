// Package ai sends compiled lot reports to an OpenAI-compatible
// endpoint for downstream analysis. It consumes the document's
// markdown rendering as an opaque payload and knows nothing about
// sheet geometry or row classification.
package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const systemPrompt = "Ты — аналитик тендерной документации. " +
	"Тебе передан отчет по одному лоту тендера в формате Markdown. " +
	"Кратко охарактеризуй предмет лота, сравни предложения подрядчиков " +
	"по итоговым суммам и отметь заметные отклонения и риски."

// Config configures the analyzer client.
type Config struct {
	// APIKey authenticates against the endpoint. Required.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
	// BaseURL overrides the endpoint, e.g. a local Ollama-compatible
	// server. Empty means the default OpenAI endpoint.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// Model names the chat model.
	Model string `mapstructure:"model" yaml:"model"`
	// RequestsPerSecond throttles calls; 0 means 1 rps.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
}

// Analyzer is a rate-limited lot-report analysis client.
type Analyzer struct {
	client  *openai.Client
	limiter *rate.Limiter
	model   string
}

// New builds an analyzer from the config.
func New(cfg Config) (*Analyzer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ai: API key is required")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Analyzer{
		client:  openai.NewClientWithConfig(clientCfg),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		model:   model,
	}, nil
}

// AnalyzeLot sends one lot's markdown report and returns the model's
// analysis.
func (a *Analyzer) AnalyzeLot(ctx context.Context, report string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: report},
		},
	})
	if err != nil {
		return "", fmt.Errorf("analyze lot: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("analyze lot: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
