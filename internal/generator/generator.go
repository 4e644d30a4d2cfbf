package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sant0-9/promptsia/internal/config"
	"github.com/sant0-9/promptsia/internal/export"
	"github.com/sant0-9/promptsia/internal/history"
	"github.com/sant0-9/promptsia/internal/llm"
	"github.com/sant0-9/promptsia/internal/logging"
	"github.com/sant0-9/promptsia/internal/prompt"
)

// CallError wraps a failure of the external generation call.
type CallError struct {
	Provider string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Generator turns requests into prompt pairs and records them.
type Generator struct {
	provider llm.Provider
	model    string
	timeout  time.Duration
	dir      string
	store    *history.Store
	logger   *log.Logger
	now      func() time.Time
}

// New creates a generator. A nil logger discards output.
func New(provider llm.Provider, cfg *config.Config, store *history.Store, logger *log.Logger) *Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Generator{
		provider: provider,
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		dir:      cfg.Dir,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate builds the instruction, calls the provider, parses the answer
// and appends it to history. History failures are logged, never returned.
func (g *Generator) Generate(ctx context.Context, req prompt.Request) (*history.Entry, error) {
	req.Description = strings.TrimSpace(req.Description)

	instruction, err := prompt.BuildInstruction(req)
	if err != nil {
		return nil, err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.Debug("sending instruction",
		"provider", g.provider.Name(),
		"media", req.Media,
		"category", req.Category,
		"chars", len(instruction))

	start := time.Now()
	resp, err := g.provider.Complete(ctx, llm.NewRequest(g.model, instruction))
	if err != nil {
		g.logger.Error("generation failed", "provider", g.provider.Name(), "err", err)
		return nil, &CallError{Provider: g.provider.Name(), Err: err}
	}
	if llm.Truncated(resp.FinishReason) {
		g.logger.Error("generation truncated", "provider", g.provider.Name(), "finish", resp.FinishReason)
		return nil, &CallError{Provider: g.provider.Name(), Err: llm.ErrTruncated}
	}

	result := prompt.ParseResponse(resp.Content)
	g.logger.Info("generation finished",
		"provider", g.provider.Name(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
		"elapsed", time.Since(start).Round(time.Millisecond))

	entry := NewEntry(req, result)
	if g.store != nil {
		stamped, err := g.store.Append(entry)
		if err != nil {
			g.logger.Warn("could not save history", "path", g.store.Path(), "err", err)
		}
		entry = stamped
	}
	return &entry, nil
}

// Ping checks that the provider is reachable.
func (g *Generator) Ping(ctx context.Context) error {
	return g.provider.Ping(ctx)
}

// Instruction returns the instruction a request would send, without calling
// the provider.
func Instruction(req prompt.Request) (string, error) {
	req.Description = strings.TrimSpace(req.Description)
	return prompt.BuildInstruction(req)
}

// Export writes entry to the exports directory and returns the file path.
func (g *Generator) Export(entry history.Entry) (string, error) {
	path, err := export.Write(g.dir, entry, g.now())
	if err != nil {
		return "", err
	}
	g.logger.Info("exported prompt", "path", path)
	return path, nil
}

// NewEntry builds the history record for a request and its result, using
// display labels for category and style.
func NewEntry(req prompt.Request, result prompt.Result) history.Entry {
	media := req.Media
	// Unrecognised media falls back to image, matching BuildInstruction.
	if media != prompt.MediaVideo {
		media = prompt.MediaImage
	}

	details := make(map[string]string, len(req.Extras))
	for k, v := range req.Extras {
		details[k] = v
	}

	return history.Entry{
		Media:       string(media),
		Category:    prompt.CategoryLabel(media, req.Category),
		Description: req.Description,
		Style:       prompt.StyleLabel(req.Style),
		Positive:    result.Positive,
		Negative:    result.Negative,
		Details:     details,
	}
}
