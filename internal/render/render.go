// internal/render/render.go
//
// Presentation for the terminal game.
// The engine only produces marks; this package maps each mark to a display
// hint and each hint to a lipgloss style:
//   - correct → HintPrimary   (green tile)
//   - present → HintSecondary (yellow tile)
//   - absent  → HintNone      (plain)
//
// With colour disabled, or on a writer without colour support (pipes,
// TERM=dumb), the hints fall back to brackets so feedback is still
// readable: [A] correct, (A) present, " A " absent.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/wordle-cli/internal/game"
)

// Hint is the abstract highlight a mark asks for.
type Hint int

const (
	HintNone Hint = iota
	HintPrimary
	HintSecondary
)

// HintFor maps a mark to its display hint.
func HintFor(m game.Mark) Hint {
	switch m {
	case game.MarkCorrect:
		return HintPrimary
	case game.MarkPresent:
		return HintSecondary
	default:
		return HintNone
	}
}

// Renderer turns session state into text for one output stream.
type Renderer struct {
	color  bool
	styles map[Hint]lipgloss.Style
	muted  lipgloss.Style
}

// New builds a renderer for w. Colour is used only when color is true and
// lipgloss detects a colour-capable terminal on w; otherwise tiles fall back
// to brackets.
func New(w io.Writer, color bool) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w), color)
}

func newRenderer(lr *lipgloss.Renderer, color bool) *Renderer {
	tile := lr.NewStyle().Bold(true).Padding(0, 1)
	return &Renderer{
		color: color && lr.ColorProfile() != termenv.Ascii,
		styles: map[Hint]lipgloss.Style{
			HintPrimary:   tile.Background(lipgloss.Color("#538d4e")).Foreground(lipgloss.Color("#ffffff")),
			HintSecondary: tile.Background(lipgloss.Color("#b59f3b")).Foreground(lipgloss.Color("#ffffff")),
			HintNone:      tile,
		},
		muted: lr.NewStyle().Faint(true),
	}
}

// Tile renders one letter with its mark.
func (r *Renderer) Tile(letter rune, m game.Mark) string {
	h := HintFor(m)
	if !r.color {
		switch h {
		case HintPrimary:
			return "[" + string(letter) + "]"
		case HintSecondary:
			return "(" + string(letter) + ")"
		default:
			return " " + string(letter) + " "
		}
	}
	return r.styles[h].Render(string(letter))
}

// Row renders one guess.
func (r *Renderer) Row(rec game.GuessRecord) string {
	var b strings.Builder
	b.WriteString("        ")
	i := 0
	for _, letter := range string(rec.Guess) {
		m := game.MarkAbsent
		if i < len(rec.Feedback) {
			m = rec.Feedback[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.Tile(letter, m))
		i++
	}
	return b.String()
}

// Board renders attempts left, letters tried and every guess so far.
func (r *Renderer) Board(snap game.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Attempts left: %d\n\n", snap.AttemptsRemaining)
	fmt.Fprintf(&b, "Letters tried: %s\n\n", r.letters(snap.LettersTried))
	for _, rec := range snap.History {
		b.WriteString(r.Row(rec))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) letters(tried string) string {
	parts := strings.Split(tried, "")
	s := strings.Join(parts, ", ")
	if r.color && s != "" {
		return r.muted.Render(s)
	}
	return s
}
