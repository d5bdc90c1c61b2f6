package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-ca/model"
	"github.com/sheikhrachel/go-ca/rules"
	"github.com/sheikhrachel/go-ca/utils"
)

// game bundles the engine with the display-side collaborators that read it.
type game struct {
	config   utils.Config
	engine   *model.Engine
	renderer *model.TerminalRenderer
	history  *model.History
	stats    *utils.Stats
	rng      model.RandomSource
	au       aurora.Aurora
	out      io.Writer

	lastRestartGen int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rs rules.RuleSet, out io.Writer) (*game, error) {
	engine, err := model.Configure(config.Width, config.Height, rs)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to configure engine")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := model.NewRandomSource(seed)
	if err = populate(engine, config, rng); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed engine")
	}

	palette := model.MonoPalette
	if config.ShowPatterns {
		palette = model.DiagonalPalette
	}

	return &game{
		config:   config,
		engine:   engine,
		renderer: model.NewTerminalRenderer(config.Colors, palette),
		history:  model.NewHistory(model.DefaultHistoryDepth),
		stats:    utils.NewStats(),
		rng:      rng,
		au:       aurora.NewAurora(config.Colors),
		out:      out,
	}, nil
}

// populate seeds a fresh random generation, plus the showcase patterns if enabled
func populate(engine *model.Engine, config utils.Config, rng model.RandomSource) error {
	if err := engine.Seed(config.SeedNumerator, config.SeedDenominator, rng); err != nil {
		return err
	}
	if config.ShowPatterns {
		engine.StampShowcase()
	}
	return nil
}

// restart reseeds the engine in place and forgets the stagnation history
func (g *game) restart(reason string) error {
	fmt.Fprintf(g.out, "🔄 Restarting due to %s...\n", reason)
	if err := populate(g.engine, g.config, g.rng); err != nil {
		return errors.Wrap(err, "[restart] failed to reseed engine")
	}
	g.history.Reset()
	g.lastRestartGen = g.engine.Generation()
	fmt.Fprintf(g.out, "✨ New patterns loaded! Living cells: %d\n", g.engine.Population())
	return nil
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	w, h := g.engine.Dimensions()
	fmt.Fprintf(g.out, "Rule: %s | Parallel: %v | Auto restart: %v\n", g.engine.Rules(), g.config.UseParallel, g.config.AutoRestart)
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial living cells: %d\n", w, h, g.engine.Population())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// advance computes the next generation with the configured strategy.
func (g *game) advance() error {
	if g.config.UseParallel {
		return g.engine.AdvanceParallel(g.config.Workers)
	}
	g.engine.Advance()
	return nil
}

// updateGameState records stats and history for the current generation
func (g *game) updateGameState(frameDuration time.Duration) (livingCells int, status string, stagnant bool) {
	livingCells = g.engine.Population()
	g.stats.Update(g.engine.Generation(), livingCells, frameDuration)

	hash := g.engine.Hash()
	stagnant = g.history.Stagnant(hash)
	g.history.Record(hash)

	status = g.au.Cyan("Active").String()
	if stagnant {
		status = g.au.Yellow("Stagnant").String()
	}
	if livingCells == 0 {
		status = g.au.Red("Extinct").String()
	}
	return livingCells, status, stagnant
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, status string) {
	w, h := g.engine.Dimensions()
	density := float64(livingCells) / float64(w*h) * 100

	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.engine.Generation(), livingCells, density, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	if g.config.AutoRestart && g.engine.Generation() > g.lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", g.engine.Generation()-g.lastRestartGen)
	}
}

// checkStopConditions determines if the run should end. With auto restart on,
// only the generation limit ends it.
func (g *game) checkStopConditions(livingCells, stagnantCount int) (bool, string) {
	if g.config.MaxGenerations > 0 && g.engine.Generation() >= g.config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", g.config.MaxGenerations)
	}
	if g.config.AutoRestart {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if g.config.StopOnStagnation && stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// checkRestartConditions determines if the grid should be reseeded
func (g *game) checkRestartConditions(livingCells, stagnantCount int) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	since := g.engine.Generation() - g.lastRestartGen
	if g.config.RefreshInterval > 0 && since > 0 && since%g.config.RefreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// run draws and advances the engine until ctx is done or a stop condition hits.
func (g *game) run(ctx context.Context) error {
	var (
		stagnantCount = 0
		lastFrameTime = time.Now()
		ticker        = time.NewTicker(max(g.config.FrameRate, time.Millisecond))
	)
	defer ticker.Stop()

	for {
		frameStart := time.Now()
		if err := g.renderer.Clear(g.out); err != nil {
			return err
		}

		livingCells, status, stagnant := g.updateGameState(frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if stagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		g.displayGameStatus(livingCells, status)
		if err := g.renderer.Display(g.out, g.engine); err != nil {
			return err
		}

		if stop, reason := g.checkStopConditions(livingCells, stagnantCount); stop {
			fmt.Fprintf(g.out, "\n🏁 Stopped: %s\n", reason)
			return nil
		}

		if restart, reason := g.checkRestartConditions(livingCells, stagnantCount); restart && g.config.AutoRestart {
			if err := g.restart(reason); err != nil {
				return err
			}
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < g.config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			if err := g.engine.Inject(g.config.InjectionCount, g.rng); err != nil {
				return err
			}
		}

		if err := g.advance(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// displayFinalStats prints the run summary
func (g *game) displayFinalStats() {
	fmt.Fprintf(g.out, "Final stats: %d generations in %.1f seconds\n",
		g.engine.Generation(), g.stats.Runtime().Seconds())
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population, %d peak population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation)
}
