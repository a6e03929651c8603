package model

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRender(t *testing.T) {
	g := mustGrid(t, 3, 2)
	_ = g.SetCells(Coord{0, 0}, Coord{2, 1})

	var buf bytes.Buffer
	r := &TerminalRenderer{Dead: ".", Alive: "#"}
	if err := r.Render(&buf, g); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "#.\n..\n.#\n"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalRenderer().Render(&buf, mustGrid(t, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("empty grid rendered %q", buf.String())
	}
}

func TestRenderWriteError(t *testing.T) {
	err := NewTerminalRenderer().Render(failingWriter{}, mustGrid(t, 2, 2))
	if errors.Cause(err) != io.ErrClosedPipe {
		t.Fatalf("err = %v, want wrapped io.ErrClosedPipe", err)
	}
}

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	NewTerminalRenderer().Clear(&buf)
	if buf.String() != ansiClearScreen {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
