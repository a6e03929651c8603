package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "◼"
	gridPosDead  = "◻"

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer renders a grid as text, one line per row
type TerminalRenderer struct {
	Dead  string
	Alive string
}

// NewTerminalRenderer returns a renderer using the default glyphs
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Dead: gridPosDead, Alive: gridPosAlive}
}

// Render writes every row of g to w
func (r *TerminalRenderer) Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for row := range g.rows {
		for col := range g.cols {
			glyph := r.Dead
			if g.cells[g.index(row, col)] == Alive {
				glyph = r.Alive
			}
			bw.WriteString(glyph)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Render] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) {
	fmt.Fprint(w, ansiClearScreen)
}
