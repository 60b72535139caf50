package model

import "sync"

// GridPool recycles grid storage between generations and restarts. A nil
// *GridPool is valid: Get allocates and Recycle drops the grid.
type GridPool struct {
	pool  sync.Pool
	mu    sync.Mutex
	drawn int
	fresh int
}

func NewGridPool() *GridPool {
	p := &GridPool{}
	p.pool.New = func() any {
		p.mu.Lock()
		p.fresh++
		p.mu.Unlock()
		return &Grid{}
	}
	return p
}

// Get hands out an all-dead width x height grid, reusing pooled storage when
// the sizes match
func (p *GridPool) Get(width, height int) *Grid {
	if p == nil {
		return NewGrid(width, height)
	}

	p.mu.Lock()
	p.drawn++
	p.mu.Unlock()

	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Recycle gives g back for reuse. Views from g.Cells must not be used afterwards.
func (p *GridPool) Recycle(g *Grid) {
	if p == nil || g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}

// Reused reports how many Get calls were served without allocating a new grid
func (p *GridPool) Reused() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drawn - p.fresh
}
