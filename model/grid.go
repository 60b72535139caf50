package model

// Grid is a fixed-size toroidal universe stored as a flat row-major slice
type Grid struct {
	width   int
	height  int
	cells   []Cell
	next    []Cell   // scratch buffer for Step, swapped with cells each generation
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates an all-dead grid with the specified dimensions.
// A zero width or height yields an empty universe that never changes.
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// NewGridFromSeed creates a grid and activates every given coordinate
func NewGridFromSeed(width, height int, coords []Coord) *Grid {
	g := NewGrid(width, height)
	for _, c := range coords {
		g.setWrapped(c.Row, c.Col, Alive)
	}
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// IndexOf maps (row, col) to its position in the flat cell slice.
// It does not wrap: the caller guarantees row < height and col < width.
func (g *Grid) IndexOf(row, col int) int {
	return row*g.width + col
}

// CellAt returns the state of a cell. Coordinates wrap around the torus;
// an empty grid reports every cell as Dead.
func (g *Grid) CellAt(row, col int) Cell {
	if g.empty() {
		return Dead
	}
	row, col = g.wrap(row, col)
	return g.cells[g.IndexOf(row, col)]
}

// Set sets a single cell, wrapping the coordinates
func (g *Grid) Set(row, col int, c Cell) {
	g.setWrapped(row, col, c)
}

// SetAlive activates (rows[i], cols[i]) for every i below the shorter of the
// two lengths. Extra elements in the longer slice are ignored.
func (g *Grid) SetAlive(rows, cols []int) {
	n := min(len(rows), len(cols))
	for i := range n {
		g.setWrapped(rows[i], cols[i], Alive)
	}
}

// Cells exposes the backing storage in row-major order. The slice is only
// valid until the next mutating call; Step reuses the memory.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Snapshot returns a copy of the current generation
func (g *Grid) Snapshot() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent copy of the grid, history included
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:   g.width,
		height:  g.height,
		cells:   g.Snapshot(),
		history: append([]string(nil), g.history...),
	}
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(width, height int) {
	width, height = max(0, width), max(0, height)
	g.width = width
	g.height = height
	g.history = nil

	// Resize cells if needed
	if len(g.cells) != width*height {
		g.cells = make([]Cell, width*height)
		g.next = nil
		return
	}
	clear(g.cells)
}

// Clear kills all cells
func (g *Grid) Clear() {
	clear(g.cells)
	g.history = nil
}

func (g *Grid) empty() bool {
	return g.width == 0 || g.height == 0
}

// wrap folds any row/col, negative included, onto the torus
func (g *Grid) wrap(row, col int) (int, int) {
	row = (row%g.height + g.height) % g.height
	col = (col%g.width + g.width) % g.width
	return row, col
}

func (g *Grid) setWrapped(row, col int, c Cell) {
	if g.empty() {
		return
	}
	row, col = g.wrap(row, col)
	g.cells[g.IndexOf(row, col)] = c
}
