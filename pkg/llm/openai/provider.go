package openai

import (
	"context"
	"errors"
	"fmt"

	"consulta-ai-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client *goopenai.Client
	model  string
}

var _ llm.LLMProvider = &OpenAIProvider{}

// NewOpenAIProvider builds a provider for the chat completions endpoint.
// baseURL overrides the default api.openai.com host, which tests use to
// point at a stub server.
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client: goopenai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message) (string, error) {
	messages := make([]goopenai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		messages[i] = goopenai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:    p.model,
		Messages: messages,
	})
	if err != nil {
		// API errors (quota, bad key, model errors) carry a message meant
		// for the caller; transport errors do not.
		var apiErr *goopenai.APIError
		if errors.As(err, &apiErr) {
			return "", &llm.UpstreamError{Message: apiErr.Message}
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty choices from completion api")
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []llm.Message{
		{Role: goopenai.ChatMessageRoleUser, Content: prompt},
	}
	return p.Chat(ctx, messages)
}
