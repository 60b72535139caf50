package model

// Cell is the state of a single grid position. The values are 0 and 1 so a
// cell can be summed directly when counting live neighbors.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// String returns "alive" or "dead"
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Coord addresses a cell by row and column
type Coord struct {
	Row int
	Col int
}
