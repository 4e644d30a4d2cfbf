package llm

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider talks to any endpoint speaking the OpenAI chat completions
// API: OpenAI itself, Groq, OpenRouter, Anthropic's compatibility layer,
// Ollama's /v1 and custom gateways.
type OpenAIProvider struct {
	client *openai.Client
	name   string
	model  string
}

func NewOpenAIProvider(name, apiKey, baseURL, model string) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client: &client,
		name:   name,
		model:  model,
	}
}

func (o *OpenAIProvider) Name() string {
	return o.name
}

func (o *OpenAIProvider) Ping(ctx context.Context) error {
	if _, err := o.client.Models.List(ctx); err != nil {
		return fmt.Errorf("cannot connect to %s API: %w", o.name, err)
	}
	return nil
}

func (o *OpenAIProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := cmp.Or(req.Model, o.model)

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: toOpenAIMessages(req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
			return nil, fmt.Errorf("%s rejected the API key: %w", o.name, err)
		}
		return nil, fmt.Errorf("%s request failed: %w", o.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices returned")
	}

	choice := resp.Choices[0]
	if Truncated(choice.FinishReason) {
		return nil, fmt.Errorf("%s %s: %w", o.name, model, ErrTruncated)
	}
	if choice.Message.Content == "" {
		return nil, errors.New("empty completion content")
	}

	return &CompletionResponse{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: choice.FinishReason,
		Usage: Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case "system":
			result = append(result, openai.SystemMessage(m.Content))
		case "assistant":
			result = append(result, openai.AssistantMessage(m.Content))
		default:
			result = append(result, openai.UserMessage(m.Content))
		}
	}
	return result
}
