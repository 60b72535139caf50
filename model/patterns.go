package model

import "math/rand/v2"

// NewRand returns a deterministic PCG source for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) {
	if g.empty() {
		return
	}
	for range count {
		g.Set(rng.IntN(g.height), rng.IntN(g.width), Alive)
	}
}

// Randomize sets each cell alive with the given probability
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i] = Alive
		} else {
			g.cells[i] = Dead
		}
	}
}

// AddGlider adds a south-east travelling glider with its top-left corner at (row, col)
func (g *Grid) AddGlider(row, col int) {
	pattern := [3][3]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}

	for dr, line := range pattern {
		for dc, c := range line {
			g.Set(row+dr, col+dc, c)
		}
	}
}

// AddOscillator adds a horizontal blinker starting at (row, col)
func (g *Grid) AddOscillator(row, col int) {
	g.Set(row, col, Alive)
	g.Set(row, col+1, Alive)
	g.Set(row, col+2, Alive)
}

// ResetWithInterestingPatterns clears the grid, drops in gliders and
// oscillators when there is room, then sprinkles random life on top
func (g *Grid) ResetWithInterestingPatterns(rng *rand.Rand, density float64) {
	g.Clear()

	if g.width >= 10 && g.height >= 10 {
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(5, g.width-8)
		}

		g.AddOscillator(g.height/4, g.width/4)
		if g.width >= 30 {
			g.AddOscillator(3*g.height/4, 3*g.width/4)
		}
	}

	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i] = Alive
		}
	}
}
