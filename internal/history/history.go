package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TimestampLayout matches the ISO-8601 local timestamps already present in
// existing history files.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Entry is one generated prompt pair with the request that produced it.
type Entry struct {
	ID          string            `json:"id,omitempty"`
	Media       string            `json:"tipo_medio"`
	Category    string            `json:"categoria"`
	Description string            `json:"descripcion"`
	Style       string            `json:"estilo"`
	Positive    string            `json:"prompt_positivo"`
	Negative    string            `json:"prompt_negativo"`
	Details     map[string]string `json:"detalles"`
	Timestamp   string            `json:"timestamp,omitempty"`
}

// Time parses the entry timestamp.
func (e *Entry) Time() (time.Time, error) {
	for _, layout := range []string{TimestampLayout, "2006-01-02T15:04:05", time.RFC3339Nano} {
		if t, err := time.ParseInLocation(layout, e.Timestamp, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", e.Timestamp)
}

// Numbered pairs an entry with its 1-based position in the log.
type Numbered struct {
	Number int
	Entry  Entry
}

// Store is the append-only history.json log.
type Store struct {
	path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns every entry, oldest first. A missing or unreadable file is
// an empty history.
func (s *Store) Load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []Entry{}
	}
	return entries
}

// Append stamps the entry with an id and the current time and rewrites the
// whole file. The stamped entry is returned.
func (s *Store) Append(entry Entry) (Entry, error) {
	entries := s.Load()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Details == nil {
		entry.Details = map[string]string{}
	}
	entry.Timestamp = s.now().Format(TimestampLayout)
	entries = append(entries, entry)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return entry, fmt.Errorf("encode history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return entry, err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return entry, fmt.Errorf("write history: %w", err)
	}
	return entry, nil
}

// Recent returns entries newest first, numbered from the oldest.
// A positive limit caps the result.
func (s *Store) Recent(limit int) []Numbered {
	entries := s.Load()
	result := make([]Numbered, 0, len(entries))
	for i, e := range entries {
		result = append(result, Numbered{Number: i + 1, Entry: e})
	}
	slices.Reverse(result)

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ErrNotFound is returned by Get for a number outside the log.
var ErrNotFound = errors.New("history entry not found")

// Get returns entry #n. Zero means the latest.
func (s *Store) Get(n int) (Entry, error) {
	entries := s.Load()
	if len(entries) == 0 {
		return Entry{}, ErrNotFound
	}
	if n == 0 {
		n = len(entries)
	}
	if n < 1 || n > len(entries) {
		return Entry{}, fmt.Errorf("#%d: %w", n, ErrNotFound)
	}
	return entries[n-1], nil
}

// Summary renders the one-line header shown for an entry.
func Summary(e Entry, number int) string {
	date := "Fecha desconocida"
	if e.Timestamp != "" {
		if t, err := e.Time(); err == nil {
			date = t.Format("02/01/2006 15:04")
		} else {
			date = e.Timestamp
		}
	}
	return fmt.Sprintf("#%d • %s • %s • %s", number, date, orNA(MediaTitle(e.Media)), orNA(e.Category))
}

// Snippet shortens a description for list display.
func Snippet(desc string, n int) string {
	r := []rune(desc)
	if len(r) <= n {
		return desc
	}
	return string(r[:n]) + "..."
}

// MediaTitle capitalizes a stored media type for display ("imagen" → "Imagen").
func MediaTitle(media string) string {
	return cases.Title(language.Spanish).String(media)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
