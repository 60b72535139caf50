package rules

const (
	// SurviveMin and SurviveMax bound the neighbor counts that keep a live cell alive
	SurviveMin = 2
	SurviveMax = 3
	// Birth is the exact neighbor count that brings a dead cell to life
	Birth = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A live cell with fewer than two live neighbors dies of underpopulation, with two or three it
survives, and with more than three it dies of overpopulation. A dead cell with exactly three
live neighbors is born; any other dead cell stays dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == Birth
}
