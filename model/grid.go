package model

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned for any cell access outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidDimensions is returned when a grid is requested with negative dimensions
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// Grid is a fixed-size board of cells stored in row-major order
type Grid struct {
	rows  int
	cols  int
	cells []CellState
}

// NewGrid creates a grid with every cell dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}, nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

func (g *Grid) outOfBounds(op string, row, col int) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] (%d, %d) outside %dx%d grid", op, row, col, g.rows, g.cols)
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (CellState, error) {
	if !g.inBounds(row, col) {
		return Dead, g.outOfBounds("Get", row, col)
	}
	return g.cells[g.index(row, col)], nil
}

// Set overwrites the state of a cell
func (g *Grid) Set(row, col int, state CellState) error {
	if !g.inBounds(row, col) {
		return g.outOfBounds("Set", row, col)
	}
	g.cells[g.index(row, col)] = state
	return nil
}

// SetCells marks every given coordinate alive. The grid is left untouched if
// any coordinate is out of bounds.
func (g *Grid) SetCells(coords ...Coord) error {
	for _, c := range coords {
		if !g.inBounds(c.Row, c.Col) {
			return g.outOfBounds("SetCells", c.Row, c.Col)
		}
	}
	for _, c := range coords {
		g.cells[g.index(c.Row, c.Col)] = Alive
	}
	return nil
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// IsAnyAlive reports whether at least one cell is alive
func (g *Grid) IsAnyAlive() bool {
	for _, c := range g.cells {
		if c == Alive {
			return true
		}
	}
	return false
}

// CountAlive returns the total number of living cells
func (g *Grid) CountAlive() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// NeighborCount counts living cells in the 3x3 block around (row, col).
// Positions beyond the grid edges do not exist; there is no wrap-around.
func (g *Grid) NeighborCount(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, g.outOfBounds("NeighborCount", row, col)
	}
	return g.neighbors(row, col), nil
}

// neighbors assumes (row, col) is in bounds
func (g *Grid) neighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[g.index(r, c)] == Alive {
				count++
			}
		}
	}

	return count
}
