package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/genai"

	"github.com/sant0-9/promptsia/internal/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		apiKey   string
		wantName string
		wantErr  bool
	}{
		{name: "gemini", cfg: config.Config{Provider: "gemini", Model: "gemini-2.5-flash"}, apiKey: "k", wantName: "gemini"},
		{name: "gemini without key", cfg: config.Config{Provider: "gemini"}, wantErr: true},
		{name: "openai", cfg: config.Config{Provider: "openai"}, apiKey: "k", wantName: "openai"},
		{name: "groq without key", cfg: config.Config{Provider: "groq"}, wantErr: true},
		{name: "ollama without key", cfg: config.Config{Provider: "ollama"}, wantName: "ollama"},
		{name: "custom without url", cfg: config.Config{Provider: "custom"}, apiKey: "k", wantErr: true},
		{name: "custom", cfg: config.Config{Provider: "custom", BaseURL: "http://localhost:8080/v1"}, wantName: "custom"},
		{name: "unknown", cfg: config.Config{Provider: "nope"}, apiKey: "k", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(context.Background(), &tt.cfg, tt.apiKey)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewProvider() expected error, got %T", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider() error = %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestOpenAIProviderDefaults(t *testing.T) {
	cfg := &config.Config{Provider: "groq"}
	p, err := NewProvider(context.Background(), cfg, "k")
	if err != nil {
		t.Fatal(err)
	}
	o := p.(*OpenAIProvider)
	if o.model != "llama-3.3-70b-versatile" {
		t.Errorf("model = %q, want groq default", o.model)
	}
}

func TestNewRequest(t *testing.T) {
	req := NewRequest("m", "instrucción")
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Content != "instrucción" {
		t.Errorf("Messages = %+v", req.Messages)
	}
	if req.Model != "m" {
		t.Errorf("Model = %q", req.Model)
	}
	if req.MaxTokens != 0 {
		t.Errorf("MaxTokens = %d, want provider default", req.MaxTokens)
	}
}

func TestTruncated(t *testing.T) {
	tests := []struct {
		reason string
		want   bool
	}{
		{"MAX_TOKENS", true},
		{"length", true},
		{"STOP", false},
		{"stop", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Truncated(tt.reason); got != tt.want {
			t.Errorf("Truncated(%q) = %v, want %v", tt.reason, got, tt.want)
		}
	}
}

func TestOpenAICompleteTruncated(t *testing.T) {
	tests := []struct {
		name    string
		finish  string
		wantErr bool
	}{
		{name: "stop", finish: "stop"},
		{name: "length", finish: "length", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintf(w, `{"id":"c1","object":"chat.completion","created":0,"model":"m",
"choices":[{"index":0,"finish_reason":%q,"message":{"role":"assistant","content":"POSITIVE: un faro"}}],
"usage":{"prompt_tokens":3,"completion_tokens":4,"total_tokens":7}}`, tt.finish)
			}))
			defer srv.Close()

			p := NewOpenAIProvider("custom", "k", srv.URL+"/v1/", "m")
			resp, err := p.Complete(context.Background(), NewRequest("m", "hola"))
			if tt.wantErr {
				if !errors.Is(err, ErrTruncated) {
					t.Fatalf("Complete() error = %v, want ErrTruncated", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Complete() error = %v", err)
			}
			if resp.Content != "POSITIVE: un faro" || resp.Usage.TotalTokens != 7 {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}

func TestGeminiCompleteTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"POSITIVE: un faro"}]},"finishReason":"MAX_TOKENS"}]}`)
	}))
	defer srv.Close()

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "k",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	if err != nil {
		t.Fatal(err)
	}
	g := &GeminiProvider{client: client, model: "gemini-2.5-flash"}

	_, err = g.Complete(context.Background(), NewRequest("", "hola"))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("Complete() error = %v, want ErrTruncated", err)
	}
}

func TestToOpenAIMessages(t *testing.T) {
	got := toOpenAIMessages([]Message{
		{Role: "system", Content: "s"},
		{Role: "user", Content: "u"},
		{Role: "assistant", Content: "a"},
	})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].OfSystem == nil || got[1].OfUser == nil || got[2].OfAssistant == nil {
		t.Errorf("roles not mapped: %+v", got)
	}
}
