package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sant0-9/promptsia/internal/config"
	"github.com/sant0-9/promptsia/internal/history"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// FileName is the export file name for the given instant.
func FileName(now time.Time) string {
	return "prompt_" + now.Format("20060102_150405") + ".txt"
}

// Write saves entry under dir/exports and returns the file path.
func Write(dir string, entry history.Entry, now time.Time) (string, error) {
	exportsDir := filepath.Join(dir, config.ExportsDir)
	if err := os.MkdirAll(exportsDir, 0755); err != nil {
		return "", fmt.Errorf("create exports dir: %w", err)
	}

	path := filepath.Join(exportsDir, FileName(now))
	if err := os.WriteFile(path, []byte(Render(entry, now)), 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// Render builds the export document body.
func Render(entry history.Entry, now time.Time) string {
	var b strings.Builder

	b.WriteString("╔══════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║              PROMPTS IA - Prompt Exportado                   ║\n")
	b.WriteString("╚══════════════════════════════════════════════════════════════╝\n\n")

	fmt.Fprintf(&b, "📅 Fecha: %s\n", now.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "🎬 Tipo de Medio: %s\n", orNA(history.MediaTitle(entry.Media)))
	fmt.Fprintf(&b, "📂 Categoría: %s\n", orNA(entry.Category))
	fmt.Fprintf(&b, "🎨 Estilo: %s\n\n", orNA(entry.Style))

	section(&b, "📝 DESCRIPCIÓN:", orNA(entry.Description))
	section(&b, "✅ PROMPT POSITIVO:", entry.Positive)
	section(&b, "🚫 PROMPT NEGATIVO:", entry.Negative)

	b.WriteString(rule + "\n\n")
	b.WriteString("Generado con PROMPTS IA\n")

	return b.String()
}

func section(b *strings.Builder, title, body string) {
	b.WriteString(rule + "\n\n")
	b.WriteString(title + "\n")
	b.WriteString(body + "\n\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
