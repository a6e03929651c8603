package model

// CellState is the state of a single grid cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "ALIVE"
	}
	return "DEAD"
}

// Coord addresses a cell by row and column
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
