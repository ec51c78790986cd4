package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/patterns"
	"github.com/sheikhrachel/go-gol/utils"
)

const periodicRefresh = 200

// game owns the live set and drives it one tick at a time
type game struct {
	config   utils.Config
	logger   *zap.Logger
	out      io.Writer
	viewport model.Bounds

	live     model.LiveSet
	stepper  *model.Stepper
	placer   *patterns.Placer
	seeder   *model.Seeder
	history  model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	metrics  *utils.Metrics

	generation     int
	stagnantCount  int
	lastRestartGen int
	lastFrameTime  time.Time
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *zap.Logger, metrics *utils.Metrics) *game {
	var pool *model.ScratchPool
	if config.UseScratchPool {
		pool = model.NewScratchPool()
	}

	viewport := model.NewBounds(config.ViewX, config.ViewY, config.Width, config.Height)
	g := &game{
		config:        config,
		logger:        logger,
		out:           os.Stdout,
		viewport:      viewport,
		live:          model.NewLiveSet(),
		stepper:       model.NewStepper(pool),
		placer:        patterns.NewPlacer(patterns.DefaultLibrary()),
		seeder:        model.NewSeeder(config.Seed),
		renderer:      model.NewTerminalRenderer(viewport),
		stats:         utils.NewStats(),
		metrics:       metrics,
		lastFrameTime: time.Now(),
	}
	g.seed()
	return g
}

// seed clears the board and lays out the configured patterns plus random life
func (g *game) seed() {
	g.live.Clear()
	g.history.Reset()

	for _, raw := range g.config.Patterns {
		p, err := utils.ParsePlacement(raw)
		if err != nil {
			g.logger.Warn("skipping pattern placement", zap.String("placement", raw), zap.Error(err))
			continue
		}
		if !g.placer.Place(p.Name, p.X, p.Y, &g.live) {
			g.logger.Warn("unknown pattern",
				zap.String("pattern", p.Name),
				zap.Strings("known", g.placer.Library().Names()))
		}
	}
	g.seeder.Randomize(&g.live, g.viewport, g.config.RandomDensity)
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	g.logger.Info("starting game of life",
		zap.Int("width", g.config.Width),
		zap.Int("height", g.config.Height),
		zap.Bool("scratch_pool", g.config.UseScratchPool),
		zap.Strings("patterns", g.config.Patterns),
		zap.Int("initial_cells", g.live.Len()))
}

// updateGameState records the current generation and reports whether it repeats a recent one
func (g *game) updateGameState() (int, string, bool) {
	livingCells := g.live.Len()
	bounds := g.live.Bounds()

	frameStart := time.Now()
	g.stats.Update(g.generation, livingCells, bounds.Area(), frameStart.Sub(g.lastFrameTime))
	g.lastFrameTime = frameStart

	isStagnant := g.history.IsStagnant(g.live)
	g.history.Update(g.live)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", g.generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, status string) {
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Status: %s | Bounding box: %d cells\n",
		g.generation, livingCells, status, g.stats.BoundingBoxSize)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	if g.generation > g.lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic_refresh"
	}
	return false, ""
}

// restartGame reseeds the board after extinction or stagnation
func (g *game) restartGame(reason string) {
	g.seed()
	g.lastRestartGen = g.generation
	g.stagnantCount = 0
	g.metrics.ObserveRestart(reason)
	g.logger.Info("restarted board", zap.String("reason", reason), zap.Int("generation", g.generation),
		zap.Int("living_cells", g.live.Len()))
}

// tick runs one frame and reports whether the game is over
func (g *game) tick() bool {
	livingCells, status, isStagnant := g.updateGameState()
	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	if !g.config.Headless {
		g.renderer.Clear()
		g.displayGameStatus(livingCells, status)
		g.renderer.Display(g.live)
	}

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		g.logger.Info("reached maximum generations", zap.Int("max_generations", g.config.MaxGenerations))
		return true
	}

	shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.generation, g.config)
	if shouldRestart && g.config.AutoRestart {
		g.restartGame(reason)
	} else if g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold {
		g.seeder.InjectRandomLife(&g.live, g.viewport, g.config.InjectionCount)
	}

	start := time.Now()
	g.live = g.stepper.Step(g.live)
	bounds := g.live.Bounds()
	g.metrics.ObserveStep(g.live.Len(), bounds.Area(), time.Since(start))

	g.generation++
	return false
}

// run ticks once per frame interval until the game ends or ctx is cancelled
func (g *game) run(ctx context.Context) error {
	interval := g.config.FrameRate
	if interval <= 0 {
		interval = time.Nanosecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if g.tick() {
			return nil
		}
		select {
		case <-ctx.Done():
			g.logger.Info("shutting down",
				zap.Int("generations", g.generation),
				zap.Duration("runtime", g.stats.Runtime()),
				zap.Float64("avg_population", g.stats.AveragePopulation))
			return nil
		case <-ticker.C:
		}
	}
}
