// Package render draws interpreter state for a terminal: the playfield in
// a box frame with the program counter highlighted, and the stack as a
// row of values. Styling follows the terminal's color profile and
// degrades to plain text on dumb terminals.
package render

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/chazu/bef/befunge"
)

// Renderer produces ANSI-styled views of an interpreter.
type Renderer struct {
	profile termenv.Profile
}

// New creates a Renderer styled for the current terminal.
func New() *Renderer {
	return NewWithProfile(termenv.ColorProfile())
}

// NewWithProfile creates a Renderer with an explicit color profile.
// Tests use termenv.Ascii for unstyled output.
func NewWithProfile(p termenv.Profile) *Renderer {
	return &Renderer{profile: p}
}

// Playfield renders the full grid inside a box frame, with the cell under
// the program counter highlighted.
func (r *Renderer) Playfield(in *befunge.Interpreter) string {
	pcx, pcy := in.Position()
	midLine := strings.Repeat("─", befunge.Cols)

	var sb strings.Builder
	sb.WriteString(r.frame("┌" + midLine + "┐"))
	sb.WriteByte('\n')

	for y := 0; y < befunge.Rows; y++ {
		sb.WriteString(r.frame("│"))
		for x := 0; x < befunge.Cols; x++ {
			cell := in.At(x, y).String()
			if x == pcx && y == pcy {
				sb.WriteString(r.highlight(cell))
			} else {
				sb.WriteString(cell)
			}
		}
		sb.WriteString(r.frame("│"))
		sb.WriteByte('\n')
	}

	sb.WriteString(r.frame("└" + midLine + "┘"))
	return sb.String()
}

// Stack renders stack values bottom first, each with a trailing space.
func (r *Renderer) Stack(values []int64) string {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(r.profile.String(strconv.FormatInt(v, 10) + " ").
			Foreground(r.profile.Color("2")).
			Background(r.profile.Color("7")).
			String())
	}
	return sb.String()
}

func (r *Renderer) frame(s string) string {
	return r.profile.String(s).
		Foreground(r.profile.Color("3")).
		String()
}

func (r *Renderer) highlight(s string) string {
	return r.profile.String(s).
		Foreground(r.profile.Color("1")).
		Background(r.profile.Color("7")).
		Bold().
		String()
}
