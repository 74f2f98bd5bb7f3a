// Package ai wraps the OpenAI-compatible completion API used for log
// analysis and the support chat assistant.
package ai

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Menatic/IT-Support/internal/shared/config"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

const logAnalysisPreamble = `You are an IT system log analyzer. Analyze the following log content and identify any issues, anomalies, or potential problems.
Be specific about what you find and provide suggestions for fixing any problems.
Focus on critical errors, warnings, suspicious activities, resource issues (CPU, memory, disk space), and security concerns.
Provide a concise analysis focusing on the most important findings first.`

const chatAssistantPreamble = `You are an IT support assistant chatbot. Respond to the following user query with helpful information.
Be concise but thorough, and provide step-by-step guidance when appropriate for troubleshooting or how-to questions.
If you need more information to provide a complete answer, ask for it.
If the query is outside your knowledge area, politely suggest creating a support ticket instead.`

// Gateway is the narrow surface the use cases depend on. Both calls return
// upstream errors on failure; callers decide how to degrade.
type Gateway interface {
	AnalyzeLog(ctx context.Context, logContent string) (string, error)
	ChatReply(ctx context.Context, userMessage string) (string, error)
	Enabled() bool
}

type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	enabled bool
	logger  logger.Interface
}

func NewClient(cfg config.AIConfig, log logger.Interface) *Client {
	c := &Client{
		model:   cfg.Model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		enabled: cfg.APIKey != "",
		logger:  log,
	}

	if !c.enabled {
		log.Warnw("AI API key not configured, AI features disabled")
		return c
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	c.client = openai.NewClientWithConfig(clientConfig)
	return c
}

func (c *Client) Enabled() bool {
	return c.enabled
}

func (c *Client) AnalyzeLog(ctx context.Context, logContent string) (string, error) {
	return c.complete(ctx, logAnalysisPreamble, "Log content:\n"+logContent)
}

func (c *Client) ChatReply(ctx context.Context, userMessage string) (string, error) {
	return c.complete(ctx, chatAssistantPreamble, userMessage)
}

func (c *Client) complete(ctx context.Context, preamble, userContent string) (string, error) {
	if !c.enabled {
		return "", errors.NewUpstreamError("AI provider is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: preamble,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userContent,
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", errors.NewUpstreamError("AI completion failed", err.Error())
	}

	if len(resp.Choices) == 0 {
		return "", errors.NewUpstreamError("AI completion returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.NewUpstreamError("AI completion returned empty content")
	}

	return text, nil
}

var _ Gateway = (*Client)(nil)
