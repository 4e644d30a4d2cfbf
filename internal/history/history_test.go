package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "history.json"))
	clock := time.Date(2025, 3, 9, 14, 5, 7, 0, time.Local)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s
}

func TestLoadMissingAndCorrupt(t *testing.T) {
	s := newTestStore(t)
	if got := s.Load(); len(got) != 0 {
		t.Errorf("Load() on missing file = %d entries, want 0", len(got))
	}

	if err := os.WriteFile(s.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Errorf("Load() on corrupt file = %d entries, want 0", len(got))
	}
}

func TestAppendRoundTrip(t *testing.T) {
	s := newTestStore(t)

	stamped, err := s.Append(Entry{
		Media:       "imagen",
		Category:    "🖼️ Generación desde Cero",
		Description: "un gato astronauta",
		Style:       "✨ Auto-detectar",
		Positive:    "a cat astronaut",
		Negative:    "blurry",
		Details:     map[string]string{},
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if stamped.ID == "" {
		t.Error("Append() did not assign an id")
	}
	if stamped.Timestamp != "2025-03-09T14:06:07.000000" {
		t.Errorf("Timestamp = %q", stamped.Timestamp)
	}

	if _, err := s.Append(Entry{Media: "video", Description: "segundo"}); err != nil {
		t.Fatal(err)
	}

	got := s.Load()
	if len(got) != 2 {
		t.Fatalf("Load() = %d entries, want 2", len(got))
	}
	if got[0].Description != "un gato astronauta" || got[0].ID != stamped.ID {
		t.Errorf("first entry = %+v", got[0])
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Generación") {
		t.Error("history file escapes non-ASCII text")
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"tipo_medio", "categoria", "descripcion", "estilo", "prompt_positivo", "prompt_negativo", "detalles", "timestamp", "id"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("stored entry missing key %q", key)
		}
	}
	for i, e := range raw {
		if d, ok := e["detalles"].(map[string]any); !ok || len(d) != 0 {
			t.Errorf("entry %d detalles = %#v, want {}", i, e["detalles"])
		}
	}
}

func TestRecentOrder(t *testing.T) {
	s := newTestStore(t)
	for _, d := range []string{"uno", "dos", "tres"} {
		if _, err := s.Append(Entry{Description: d}); err != nil {
			t.Fatal(err)
		}
	}

	got := s.Recent(0)
	if len(got) != 3 {
		t.Fatalf("Recent() = %d, want 3", len(got))
	}
	if got[0].Number != 3 || got[0].Entry.Description != "tres" {
		t.Errorf("newest = #%d %q, want #3 tres", got[0].Number, got[0].Entry.Description)
	}
	if got[2].Number != 1 || got[2].Entry.Description != "uno" {
		t.Errorf("oldest = #%d %q, want #1 uno", got[2].Number, got[2].Entry.Description)
	}

	if got := s.Recent(2); len(got) != 2 || got[1].Number != 2 {
		t.Errorf("Recent(2) = %+v", got)
	}
}

func TestGet(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(0) on empty = %v, want ErrNotFound", err)
	}

	for _, d := range []string{"uno", "dos"} {
		if _, err := s.Append(Entry{Description: d}); err != nil {
			t.Fatal(err)
		}
	}

	if e, err := s.Get(0); err != nil || e.Description != "dos" {
		t.Errorf("Get(0) = %q, %v; want latest", e.Description, err)
	}
	if e, err := s.Get(1); err != nil || e.Description != "uno" {
		t.Errorf("Get(1) = %q, %v", e.Description, err)
	}
	if _, err := s.Get(3); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(3) = %v, want ErrNotFound", err)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "python isoformat",
			entry: Entry{Media: "imagen", Category: "🎭 Transformación de Rostro", Timestamp: "2024-01-15T10:30:45.123456"},
			want:  "#4 • 15/01/2024 10:30 • Imagen • 🎭 Transformación de Rostro",
		},
		{
			name:  "seconds only",
			entry: Entry{Media: "video", Category: "🎥 Movimientos de Cámara", Timestamp: "2024-12-31T23:59:00"},
			want:  "#4 • 31/12/2024 23:59 • Video • 🎥 Movimientos de Cámara",
		},
		{
			name:  "unparseable timestamp shown raw",
			entry: Entry{Media: "video", Category: "x", Timestamp: "ayer"},
			want:  "#4 • ayer • Video • x",
		},
		{
			name:  "missing timestamp and metadata",
			entry: Entry{},
			want:  "#4 • Fecha desconocida • N/A • N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.entry, 4); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnippet(t *testing.T) {
	short := "corto"
	if got := Snippet(short, 100); got != short {
		t.Errorf("Snippet(short) = %q", got)
	}

	long := strings.Repeat("ñ", 120)
	got := Snippet(long, 100)
	if !strings.HasSuffix(got, "...") || len([]rune(got)) != 103 {
		t.Errorf("Snippet(long) has %d runes", len([]rune(got)))
	}
}
