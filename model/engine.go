package model

import "github.com/sheikhrachel/go-cgol/rules"

// CountLiveNeighbors counts the live cells around (row, col) on the torus.
// Row offsets are height-1, 0 and 1 and column offsets width-1, 0 and 1, taken
// modulo the dimensions; pairs whose offsets are both 0 are the cell itself and
// are skipped. On an axis of length 1 the offset length-1 is also 0, so fewer
// than eight positions are examined there, and the ones that remain may still
// land back on the cell.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	if g.empty() {
		return 0
	}
	row, col = g.wrap(row, col)

	var (
		count = 0
		dRows = [3]int{g.height - 1, 0, 1}
		dCols = [3]int{g.width - 1, 0, 1}
	)
	for _, dr := range dRows {
		r := (row + dr) % g.height
		for _, dc := range dCols {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (col + dc) % g.width
			count += int(g.cells[g.IndexOf(r, c)])
		}
	}
	return count
}

// Step advances the grid by one generation in place. The next generation is
// computed into a second buffer and swapped in, so reads before Step returns
// see generation N and reads after see generation N+1.
// Step on an empty grid is a no-op.
func (g *Grid) Step() {
	if g.empty() {
		return
	}
	if len(g.next) != len(g.cells) {
		g.next = make([]Cell, len(g.cells))
	}
	g.advanceInto(g.next)
	g.cells, g.next = g.next, g.cells
}

// NextGeneration returns a new grid holding the next generation, leaving g
// untouched. The stagnation history is carried over. When pool is non-nil the
// result is drawn from it.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	next := pool.Get(g.width, g.height)
	next.history = append(next.history, g.history...)
	if !g.empty() {
		g.advanceInto(next.cells)
	}
	return next
}

// advanceInto writes the generation after g.cells into dst, which must have
// the same length and must not alias g.cells.
func (g *Grid) advanceInto(dst []Cell) {
	idx := 0
	for row := range g.height {
		for col := range g.width {
			alive := g.cells[idx] == Alive
			if rules.ApplyConwayRules(g.CountLiveNeighbors(row, col), alive) {
				dst[idx] = Alive
			} else {
				dst[idx] = Dead
			}
			idx++
		}
	}
}
