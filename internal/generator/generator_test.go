package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sant0-9/promptsia/internal/config"
	"github.com/sant0-9/promptsia/internal/history"
	"github.com/sant0-9/promptsia/internal/llm"
	"github.com/sant0-9/promptsia/internal/prompt"
)

type fakeProvider struct {
	content string
	finish  string
	err     error
	calls   int
	last    *llm.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Ping(ctx context.Context) error { return nil }

func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content, Model: req.Model, FinishReason: f.finish}, nil
}

func newTestGenerator(t *testing.T, p llm.Provider) (*Generator, *history.Store) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Dir = t.TempDir()
	store := history.NewStore(cfg.HistoryPath())
	return New(p, cfg, store, nil), store
}

func TestGenerateEmptyDescription(t *testing.T) {
	p := &fakeProvider{content: "POSITIVE: x"}
	g, store := newTestGenerator(t, p)

	for _, desc := range []string{"", "   \n\t"} {
		_, err := g.Generate(context.Background(), prompt.Request{Media: prompt.MediaImage, Category: prompt.CategoryGenerate, Description: desc})
		if !errors.Is(err, prompt.ErrEmptyDescription) {
			t.Errorf("Generate(%q) error = %v, want ErrEmptyDescription", desc, err)
		}
	}
	if p.calls != 0 {
		t.Errorf("provider called %d times, want 0", p.calls)
	}
	if n := len(store.Load()); n != 0 {
		t.Errorf("history has %d entries, want 0", n)
	}
}

func TestGenerateSuccess(t *testing.T) {
	p := &fakeProvider{content: "POSITIVE:\na red fox, golden hour\nNEGATIVE:\nblurry"}
	g, store := newTestGenerator(t, p)

	entry, err := g.Generate(context.Background(), prompt.Request{
		Media:       prompt.MediaImage,
		Category:    prompt.CategoryGenerate,
		Description: "  un zorro rojo  ",
		Style:       prompt.DefaultStyle,
		Extras:      prompt.Extras{},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if entry.Positive != "a red fox, golden hour" || entry.Negative != "blurry" {
		t.Errorf("result = %q / %q", entry.Positive, entry.Negative)
	}
	if entry.Description != "un zorro rojo" {
		t.Errorf("Description = %q, want trimmed", entry.Description)
	}
	if entry.Category != "🖼️ Generación desde Cero" || entry.Style != "✨ Auto-detectar" {
		t.Errorf("labels = %q / %q", entry.Category, entry.Style)
	}
	if entry.ID == "" || entry.Timestamp == "" {
		t.Error("entry not stamped by history")
	}

	if len(p.last.Messages) != 1 || p.last.Messages[0].Role != "user" {
		t.Fatalf("request messages = %+v", p.last.Messages)
	}
	if !strings.Contains(p.last.Messages[0].Content, "un zorro rojo") {
		t.Error("instruction does not embed the description")
	}
	if p.last.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q", p.last.Model)
	}

	saved := store.Load()
	if len(saved) != 1 || saved[0].ID != entry.ID {
		t.Errorf("history = %+v", saved)
	}
}

func TestGenerateCallError(t *testing.T) {
	cause := errors.New("quota exceeded")
	p := &fakeProvider{err: cause}
	g, store := newTestGenerator(t, p)

	_, err := g.Generate(context.Background(), prompt.Request{Media: prompt.MediaVideo, Category: prompt.CategoryVideoGenerate, Description: "olas"})

	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("error = %T %v, want *CallError", err, err)
	}
	if !errors.Is(err, cause) {
		t.Error("CallError does not unwrap to the provider error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("message = %q, want provider message kept", err.Error())
	}
	if n := len(store.Load()); n != 0 {
		t.Errorf("history has %d entries after failure, want 0", n)
	}
}

func TestGenerateHistoryFailureIsBestEffort(t *testing.T) {
	p := &fakeProvider{content: "POSITIVE: ok"}
	cfg := config.DefaultConfig()
	cfg.Dir = t.TempDir()

	// A directory where the history file should be makes the write fail.
	blocked := filepath.Join(cfg.Dir, "history.json")
	if err := os.Mkdir(blocked, 0755); err != nil {
		t.Fatal(err)
	}
	g := New(p, cfg, history.NewStore(blocked), nil)

	entry, err := g.Generate(context.Background(), prompt.Request{Media: prompt.MediaImage, Category: prompt.CategoryGenerate, Description: "algo"})
	if err != nil {
		t.Fatalf("Generate() error = %v, want history failure swallowed", err)
	}
	if entry.Positive != "ok" || entry.Negative != prompt.FallbackNegative {
		t.Errorf("result = %q / %q", entry.Positive, entry.Negative)
	}
}

func TestExport(t *testing.T) {
	g, _ := newTestGenerator(t, &fakeProvider{})
	g.now = func() time.Time { return time.Date(2025, 2, 3, 4, 5, 6, 0, time.Local) }

	path, err := g.Export(history.Entry{Media: "imagen", Positive: "p", Negative: "n"})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if filepath.Base(path) != "prompt_20250203_040506.txt" {
		t.Errorf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export not written: %v", err)
	}
}

func TestNewEntryLabels(t *testing.T) {
	req := prompt.Request{
		Media:       prompt.MediaVideo,
		Category:    prompt.CategoryCameraMovement,
		Description: "ciudad",
		Style:       "cinematográfico",
		Extras:      prompt.Extras{prompt.FieldDuration: "10s"},
	}
	e := NewEntry(req, prompt.Result{Positive: "p", Negative: "n"})

	if e.Media != "video" || e.Category != "🎥 Movimientos de Cámara" || e.Style != "🎬 Cinematográfico" {
		t.Errorf("entry = %+v", e)
	}
	if e.Details[prompt.FieldDuration] != "10s" {
		t.Errorf("Details = %v", e.Details)
	}

	req.Extras[prompt.FieldDuration] = "30s"
	if e.Details[prompt.FieldDuration] != "10s" {
		t.Error("entry shares the request extras map")
	}
}

func TestGenerateTruncatedReply(t *testing.T) {
	p := &fakeProvider{content: "POSITIVE:\nun faro en la niebla, luz", finish: "MAX_TOKENS"}
	g, store := newTestGenerator(t, p)

	entry, err := g.Generate(context.Background(), prompt.Request{
		Media:       prompt.MediaImage,
		Category:    prompt.CategoryGenerate,
		Description: "un faro",
		Style:       prompt.DefaultStyle,
	})
	if entry != nil {
		t.Errorf("entry = %+v, want nil", entry)
	}
	var callErr *CallError
	if !errors.As(err, &callErr) || !errors.Is(err, llm.ErrTruncated) {
		t.Fatalf("Generate() error = %v, want CallError wrapping ErrTruncated", err)
	}
	if n := len(store.Load()); n != 0 {
		t.Errorf("history has %d entries, want 0", n)
	}
	if p.last.MaxTokens != 0 {
		t.Errorf("MaxTokens = %d, want no cap", p.last.MaxTokens)
	}
}

func TestNewEntryUnknownMediaIsImage(t *testing.T) {
	req := prompt.Request{Media: "audio", Category: prompt.CategoryGenerate, Description: "un faro"}
	e := NewEntry(req, prompt.Result{Positive: "p", Negative: "n"})
	if e.Media != string(prompt.MediaImage) {
		t.Errorf("Media = %q, want imagen", e.Media)
	}

	instruction, err := Instruction(req)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Instruction(prompt.Request{Media: prompt.MediaImage, Category: prompt.CategoryGenerate, Description: "un faro"})
	if instruction != want {
		t.Error("unknown media did not use the image template")
	}
	if e.Details == nil {
		t.Error("Details is nil, want an empty map")
	}
}
