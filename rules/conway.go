package rules

// Outcome is the result of applying Conway's rules to a single cell
type Outcome uint8

const (
	// StaysDead is a dead cell without exactly three live neighbors
	StaysDead Outcome = iota
	// Survival is a live cell with two or three live neighbors
	Survival
	// Underpopulation is a live cell with fewer than two live neighbors
	Underpopulation
	// Overcrowding is a live cell with more than three live neighbors
	Overcrowding
	// Reproduction is a dead cell with exactly three live neighbors
	Reproduction
)

var outcomeNames = [...]string{
	StaysDead:       "stays dead",
	Survival:        "survival",
	Underpopulation: "underpopulation",
	Overcrowding:    "overcrowding",
	Reproduction:    "reproduction",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Changes reports whether the outcome flips the cell's state
func (o Outcome) Changes() bool {
	switch o {
	case Underpopulation, Overcrowding, Reproduction:
		return true
	}
	return false
}

// Alive reports whether the cell is alive in the next generation
func (o Outcome) Alive() bool {
	return o == Survival || o == Reproduction
}

/*
Evaluate applies Conway's Game of Life rules to a cell with the given state and live neighbor count.

  - alive, fewer than 2 neighbors: dies (underpopulation)
  - alive, 2 or 3 neighbors: lives on
  - alive, more than 3 neighbors: dies (overcrowding)
  - dead, exactly 3 neighbors: becomes alive (reproduction)
*/
func Evaluate(alive bool, neighbors int) Outcome {
	if !alive {
		if neighbors == 3 {
			return Reproduction
		}
		return StaysDead
	}

	switch {
	case neighbors < 2:
		return Underpopulation
	case neighbors <= 3:
		return Survival
	default:
		return Overcrowding
	}
}
