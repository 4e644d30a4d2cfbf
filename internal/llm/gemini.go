package llm

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Ping(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, g.model, nil); err != nil {
		return fmt.Errorf("cannot reach Gemini model %s: %w", g.model, err)
	}
	return nil
}

func (g *GeminiProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := cmp.Or(req.Model, g.model)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := g.client.Models.GenerateContent(ctx, model, toGeminiContents(req.Messages), config)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	var finish string
	if len(result.Candidates) > 0 {
		finish = string(result.Candidates[0].FinishReason)
	}
	if Truncated(finish) {
		return nil, fmt.Errorf("gemini %s: %w", model, ErrTruncated)
	}

	text := result.Text()
	if text == "" {
		return nil, errors.New("no response from Gemini")
	}

	resp := &CompletionResponse{
		Content:      text,
		Model:        model,
		FinishReason: finish,
	}
	if u := result.UsageMetadata; u != nil {
		resp.Usage = Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return resp, nil
}

func toGeminiContents(msgs []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := genai.Role(genai.RoleUser)
		if m.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return contents
}
