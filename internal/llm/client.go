package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type Options struct {
	APIKey       string
	BaseURL      string
	RoutingModel string
	VisionModel  string
	Temperature  float32
}

// Client обёртка над OpenAI chat completions: маршруты и разбор чеков
type Client struct {
	api          *openai.Client
	enabled      bool
	routingModel string
	visionModel  string
	temperature  float32
	log          *slog.Logger
}

func NewClient(opts Options, log *slog.Logger) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	return &Client{
		api:          openai.NewClientWithConfig(cfg),
		enabled:      opts.APIKey != "",
		routingModel: opts.RoutingModel,
		visionModel:  opts.VisionModel,
		temperature:  opts.Temperature,
		log:          log,
	}
}

// Enabled false, если ключ API не задан
func (c *Client) Enabled() bool {
	return c.enabled
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			c.log.Warn("openai api error",
				slog.Int("status", apiErr.HTTPStatusCode),
				slog.String("model", req.Model),
				slog.String("message", apiErr.Message))
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}
	return resp.Choices[0].Message.Content, nil
}

// stripCodeFence убирает markdown-обёртку ```json ... ``` вокруг ответа модели
func stripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
