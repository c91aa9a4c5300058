// Package report renders the plain-text coalition analysis users export.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/mmynk/coalition/internal/models"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

const rule = "=========================================="

// Analysis is everything the export text is built from.
type Analysis struct {
	Title       string // e.g. "Bihar Election 2025"
	Source      string // data source attribution
	Parties     []models.Party
	Seats       int
	Majority    int
	GeneratedAt time.Time
}

// HasMajority reports whether the analysed selection reaches majority.
func (a Analysis) HasMajority() bool {
	return a.Seats >= a.Majority
}

// Render formats the analysis as the export text.
func Render(a Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - Coalition Analysis\n", a.Title)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", a.GeneratedAt.Format("02/01/2006, 15:04:05"))

	b.WriteString("SELECTED COALITION:\n")
	if len(a.Parties) == 0 {
		b.WriteString("No parties selected\n")
	}
	for _, p := range a.Parties {
		fmt.Fprintf(&b, "%s (%d)\n", p.Abbr, p.Seats)
	}

	fmt.Fprintf(&b, "\nTOTAL SEATS: %d\n", a.Seats)
	fmt.Fprintf(&b, "MAJORITY REQUIRED: %d\n\n", a.Majority)

	if a.HasMajority() {
		b.WriteString("STATUS: ✅ MAJORITY REACHED\n")
	} else {
		b.WriteString("STATUS: ❌ MINORITY\n")
		fmt.Fprintf(&b, "Seats Needed: %d\n", a.Majority-a.Seats)
	}

	if a.Source != "" {
		fmt.Fprintf(&b, "\nData Source: %s\n", a.Source)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Simulated using %s Government Formation Simulator", a.Title)

	return b.String()
}

// Copy puts text on the system clipboard.
// Callers should show the text instead when this fails (headless sessions
// have no clipboard).
func Copy(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
