package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// Config selects the OpenAI-compatible endpoint and model.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client sends chat completions through langchaingo.
type Client struct {
	model  llms.Model
	name   string
	logger *zap.Logger
}

// NewOpenAIClient creates a completion client. BaseURL may point at any
// OpenAI-compatible server.
func NewOpenAIClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	return NewClient(model, cfg.Model, logger), nil
}

// NewClient wraps an existing langchaingo model.
func NewClient(model llms.Model, name string, logger *zap.Logger) *Client {
	return &Client{model: model, name: name, logger: logger}
}

// Complete sends a system and a user message and returns the first choice.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	resp, err := c.model.GenerateContent(ctx, messages, llms.WithTemperature(0.2))
	if err != nil {
		return "", fmt.Errorf("completion with %s failed: %w", c.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	choice := resp.Choices[0]
	c.logger.Debug("Completion received",
		zap.String("model", c.name),
		zap.String("stop_reason", choice.StopReason),
		zap.Int("length", len(choice.Content)))
	return choice.Content, nil
}
