package model

import (
	"strings"

	"github.com/sheikhrachel/go-life/rules"
)

// change is a cell state flip scheduled during a step and applied once all
// cells have been evaluated
type change struct {
	row, col int
	state    CellState
}

// Simulation advances a Grid one generation at a time.
// A Simulation is not safe for concurrent use.
type Simulation struct {
	grid       *Grid
	generation uint64
	pending    []change
}

// NewSimulation creates a simulation over an empty rows x cols grid
func NewSimulation(rows, cols int) (*Simulation, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return NewSimulationWithGrid(grid), nil
}

// NewSimulationWithGrid creates a simulation that takes ownership of grid
func NewSimulationWithGrid(grid *Grid) *Simulation {
	return &Simulation{grid: grid}
}

// Generation returns the number of steps taken so far
func (s *Simulation) Generation() uint64 {
	return s.generation
}

// Rows returns the number of rows of the underlying grid
func (s *Simulation) Rows() int {
	return s.grid.Rows()
}

// Cols returns the number of columns of the underlying grid
func (s *Simulation) Cols() int {
	return s.grid.Cols()
}

// SetCells marks the given cells alive. It may be called between steps.
func (s *Simulation) SetCells(coords ...Coord) error {
	return s.grid.SetCells(coords...)
}

// IsCellAlive reports whether the cell at (row, col) is alive
func (s *Simulation) IsCellAlive(row, col int) (bool, error) {
	state, err := s.grid.Get(row, col)
	if err != nil {
		return false, err
	}
	return state == Alive, nil
}

// IsAnyCellAlive reports whether at least one cell is alive
func (s *Simulation) IsAnyCellAlive() bool {
	return s.grid.IsAnyAlive()
}

// NeighborCount returns the number of living neighbors of (row, col)
func (s *Simulation) NeighborCount(row, col int) (int, error) {
	return s.grid.NeighborCount(row, col)
}

// Population returns the number of living cells
func (s *Simulation) Population() int {
	return s.grid.CountAlive()
}

// Step advances the grid by one generation.
//
// Every cell is evaluated against the grid as it was at the start of the
// step; the resulting changes are only written once evaluation is complete.
func (s *Simulation) Step() {
	s.generation++

	s.pending = s.pending[:0]
	g := s.grid
	for row := range g.rows {
		for col := range g.cols {
			alive := g.cells[g.index(row, col)] == Alive
			outcome := rules.Evaluate(alive, g.neighbors(row, col))
			if !outcome.Changes() {
				continue
			}
			next := Dead
			if outcome.Alive() {
				next = Alive
			}
			s.pending = append(s.pending, change{row: row, col: col, state: next})
		}
	}

	for _, c := range s.pending {
		g.cells[g.index(c.row, c.col)] = c.state
	}
}

// String renders the grid with the default terminal glyphs
func (s *Simulation) String() string {
	var sb strings.Builder
	// strings.Builder never fails to write
	_ = NewTerminalRenderer().Render(&sb, s.grid)
	return sb.String()
}
