package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-cgol/model"
	"github.com/sheikhrachel/go-cgol/seed"
	"github.com/sheikhrachel/go-cgol/utils"
)

// frame is one rendered generation handed from the simulation to the display
type frame struct {
	grid   *model.Grid
	header string
	notes  []string
}

// game owns the running grid. Only the simulate goroutine touches it.
type game struct {
	config utils.Config
	out    io.Writer
	grid   *model.Grid
	pool   *model.GridPool
	rng    *rand.Rand
	stats  *utils.Stats

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// newGame sets up the initial game state
func newGame(config utils.Config, out io.Writer) (*game, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	rng := model.NewRand(config.Seed)
	grid, err := seedGrid(config, rng)
	if err != nil {
		return nil, err
	}

	source := "random patterns"
	if config.ImagePath != "" {
		source = config.ImagePath
	}

	return &game{
		config: config,
		out:    out,
		grid:   grid,
		pool:   pool,
		rng:    rng,
		stats:  utils.NewStats(source),
	}, nil
}

// seedGrid builds a fresh grid from the configured image, or from patterns
// and random life when no image is set
func seedGrid(config utils.Config, rng *rand.Rand) (*model.Grid, error) {
	if config.ImagePath != "" {
		return seed.LoadFile(config.ImagePath)
	}

	grid := model.NewGrid(config.Width, config.Height)
	grid.ResetWithInterestingPatterns(rng, config.RandomDensity)
	return grid, nil
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	fmt.Fprintf(g.out, "Features: Memory Pool: %v | Seed: %s\n", g.config.UseMemoryPool, g.stats.SeedSource)
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial living cells: %d\n",
		g.grid.GetWidth(), g.grid.GetHeight(), g.grid.CountLivingCells())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// updateGameState records the current generation and returns status information
func (g *game) updateGameState(lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.grid.CountLivingCells()

	var density float64
	if area := g.grid.GetWidth() * g.grid.GetHeight(); area > 0 {
		density = float64(livingCells) / float64(area) * 100
	}

	g.stats.Update(g.generation, livingCells, time.Since(lastFrameTime))

	// compare against earlier generations before recording this one
	isStagnant := g.grid.IsStagnant()
	g.grid.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount+1)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// gameStatus formats the status lines shown above the grid
func (g *game) gameStatus(livingCells int, density float64, status string) string {
	s := fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, livingCells, density, status)
	s += fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, time.Since(g.stats.StartTime).Seconds())

	if g.generation > g.lastRestartGen {
		s += fmt.Sprintf("Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	return s
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RefreshInterval > 0 && generation > 0 && generation%config.RefreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame swaps in a freshly seeded grid
func (g *game) restartGame(reason string) error {
	grid, err := seedGrid(g.config, g.rng)
	if err != nil {
		return err
	}

	g.stats.RecordRestart(reason)
	g.pool.Recycle(g.grid)
	g.grid = grid
	g.lastRestartGen = g.generation
	g.stagnantCount = 0
	return nil
}

// advance moves the grid one generation forward
func (g *game) advance() {
	if g.pool != nil {
		next := g.grid.NextGeneration(g.pool)
		g.pool.Recycle(g.grid)
		g.grid = next
	} else {
		g.grid.Step()
	}
	g.generation++
}

// simulate runs the game loop and publishes one frame per generation. It
// closes frames when it stops.
func (g *game) simulate(ctx context.Context, frames chan<- frame) error {
	defer close(frames)

	lastFrameTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		livingCells, density, status, isStagnant := g.updateGameState(lastFrameTime)
		lastFrameTime = frameStart

		if isStagnant {
			g.stagnantCount++
		} else {
			g.stagnantCount = 0
		}

		f := frame{grid: g.grid.Clone(), header: g.gameStatus(livingCells, density, status)}

		done := g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
		if done {
			f.notes = append(f.notes, fmt.Sprintf("🏁 Reached maximum generations limit (%d)", g.config.MaxGenerations))
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, g.stagnantCount, g.generation, g.config)
		if !done && shouldRestart && g.config.AutoRestart {
			f.notes = append(f.notes, fmt.Sprintf("🔄 Restarting due to %s...", restartReason))
		}

		select {
		case frames <- f:
		case <-ctx.Done():
			return nil
		}
		if done {
			return nil
		}

		if shouldRestart && g.config.AutoRestart {
			if err := g.restartGame(restartReason); err != nil {
				return err
			}
		} else if g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			g.grid.InjectRandomLife(g.rng, g.config.InjectionCount)
		}

		g.advance()

		select {
		case <-time.After(g.config.FrameRate):
		case <-ctx.Done():
			return nil
		}
	}
}

// display draws frames as they arrive until the channel closes
func display(renderer *model.TerminalRenderer, frames <-chan frame) error {
	for f := range frames {
		renderer.Clear()
		fmt.Fprint(renderer.Out, f.header)
		fmt.Fprintln(renderer.Out)
		if err := renderer.Display(f.grid); err != nil {
			return err
		}
		for _, note := range f.notes {
			fmt.Fprintln(renderer.Out, note)
		}
	}
	return nil
}

// run drives the simulation and the display concurrently until the game ends
// or ctx is cancelled
func (g *game) run(ctx context.Context) error {
	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan frame)
		renderer  = model.NewTerminalRenderer(g.out)
	)

	eg.Go(func() error { return g.simulate(egCtx, frames) })
	eg.Go(func() error { return display(renderer, frames) })

	return eg.Wait()
}

// printFinalStats summarises the session
func (g *game) printFinalStats() {
	fmt.Fprintf(g.out, "Final stats: %d generations in %.1f seconds\n",
		g.generation, time.Since(g.stats.StartTime).Seconds())
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population, %d peak\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation)
	fmt.Fprintf(g.out, "Seed: %s | Restarts: %s | Pooled grids reused: %d\n",
		g.stats.SeedSource, g.stats.RestartSummary(), g.pool.Reused())
}
