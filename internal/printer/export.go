// Package printer implements the resume export: the staged progress
// script played by the shell, and the writer producing the plain-text CV
// under the state directory.
package printer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"kitek/internal/content"
)

// Step is one line of the export progress theater.
type Step struct {
	Text  string
	Delay time.Duration
}

// Steps is the export script, in play order.
var Steps = []Step{
	{Text: "SCANNING RESUME DATA...", Delay: 400 * time.Millisecond},
	{Text: "COMPILING EXPERIENCE.LOG...", Delay: 600 * time.Millisecond},
	{Text: "LOADING SKILLS.DAT...", Delay: 500 * time.Millisecond},
	{Text: "INDEXING PROJECTS.DIR...", Delay: 450 * time.Millisecond},
	{Text: "ENCRYPTING CONTACT INFO...", Delay: 550 * time.Millisecond},
	{Text: "GENERATING DOCUMENT BUFFER...", Delay: 700 * time.Millisecond},
	{Text: "OPTIMIZING FILE SIZE...", Delay: 400 * time.Millisecond},
	{Text: "FINALIZING DOCUMENT...", Delay: 500 * time.Millisecond},
}

const barCells = 32

// RenderBar renders the progress bar after step current of total.
func RenderBar(current, total int) string {
	if total <= 0 {
		total = 1
	}
	filled := current * barCells / total
	percent := current * 100 / total
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", barCells-filled),
		percent)
}

// Exporter writes the assembled CV document.
// One export runs at a time; a second Start while one is in flight is a
// no-op, matching the original double-click guard.
type Exporter struct {
	library *content.Library
	dir     string
	logger  *zap.Logger
	busy    atomic.Bool
}

// NewExporter creates an exporter writing into dir.
func NewExporter(library *content.Library, dir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{library: library, dir: dir, logger: logger.Named("printer")}
}

// TryStart claims the single export slot.
// Returns false when an export is already running.
func (e *Exporter) TryStart() bool {
	return e.busy.CompareAndSwap(false, true)
}

// Finish releases the export slot.
func (e *Exporter) Finish() {
	e.busy.Store(false)
}

// Write assembles the CV from the content sections and writes it to
// disk, returning the file path.
func (e *Exporter) Write() (string, error) {
	var doc strings.Builder
	doc.WriteString("MARCIN DEVELOPER\n")
	doc.WriteString("SENIOR SOFTWARE ENGINEER\n")
	doc.WriteString(content.Email + " | github.com/marcingolenia | linkedin.com/in/marcin-golenia-228359183/\n")
	doc.WriteString("\n" + strings.Repeat("=", 60) + "\n\n")

	for _, key := range []string{content.SectionExperience, content.SectionSkills, content.SectionProjects} {
		body, ok := e.library.Get(key)
		if !ok {
			return "", fmt.Errorf("printer: missing section %q", key)
		}
		doc.WriteString(body)
		doc.WriteString("\n" + strings.Repeat("-", 60) + "\n\n")
	}
	doc.WriteString("Generated from MARCIN_DEV.EXE v2.4.0 | Terminal Portfolio System\n")

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("printer: create export dir: %w", err)
	}
	path := filepath.Join(e.dir, "marcin_cv.txt")
	if err := os.WriteFile(path, []byte(doc.String()), 0o644); err != nil {
		return "", fmt.Errorf("printer: write cv: %w", err)
	}

	e.logger.Info("cv exported", zap.String("path", path))
	return path, nil
}
