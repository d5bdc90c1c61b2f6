package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-ca/model"
	"github.com/sheikhrachel/go-ca/rules"
	"github.com/sheikhrachel/go-ca/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width = 12
	config.Height = 8
	config.FrameRate = time.Millisecond
	config.Seed = 1
	config.Colors = false
	return config
}

func TestInitializeGameRejectsBadGrid(t *testing.T) {
	config := testConfig()
	config.Width = 0
	if _, err := initializeGame(config, rules.Conway, &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for a zero width grid")
	}
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		config := testConfig()
		config.MaxGenerations = 3
		config.UseParallel = parallel
		config.SeedNumerator = 1
		config.SeedDenominator = 1 // Everything alive

		var out bytes.Buffer
		g, err := initializeGame(config, rules.Coral, &out)
		if err != nil {
			t.Fatal(err)
		}
		if err = g.run(context.Background()); err != nil {
			t.Fatal(err)
		}
		if g.engine.Generation() != 3 {
			t.Fatalf("parallel=%v stopped at generation %d, expected 3", parallel, g.engine.Generation())
		}
		if !strings.Contains(out.String(), "maximum generations limit (3)") {
			t.Fatalf("missing stop reason in %q", out.String())
		}
	}
}

func TestRunStopsOnExtinction(t *testing.T) {
	config := testConfig()
	config.SeedNumerator = 0

	var out bytes.Buffer
	g, err := initializeGame(config, rules.Conway, &out)
	if err != nil {
		t.Fatal(err)
	}
	if err = g.run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.engine.Generation() != 0 {
		t.Fatalf("extinct grid advanced to generation %d", g.engine.Generation())
	}
	if !strings.Contains(out.String(), "Extinct") || !strings.Contains(out.String(), "extinction") {
		t.Fatalf("missing extinction status in %q", out.String())
	}
}

func TestRunStopsOnStagnation(t *testing.T) {
	config := testConfig()
	config.SeedNumerator = 0
	config.StopOnStagnation = true
	config.StagnationThreshold = 2

	var out bytes.Buffer
	g, err := initializeGame(config, rules.Conway, &out)
	if err != nil {
		t.Fatal(err)
	}
	if err = g.engine.SeedPoints(); err != nil {
		t.Fatal(err)
	}
	g.engine.Stamp([][]bool{{true, true}, {true, true}}, 4, 3)

	if err = g.run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "stagnation detected") {
		t.Fatalf("missing stagnation stop in %q", out.String())
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	config := testConfig()
	config.SeedNumerator = 0

	g, err := initializeGame(config, rules.MustParse("b0s012345678"), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	// Born on 0 and surviving everything: the grid fills and never stops on its own.
	g.engine.Advance()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = g.run(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestDisplayFinalStats(t *testing.T) {
	var out bytes.Buffer
	g, err := initializeGame(testConfig(), rules.Conway, &out)
	if err != nil {
		t.Fatal(err)
	}
	g.displayGameInfo()
	g.displayFinalStats()
	for _, want := range []string{"Rule: s23b3", "Grid: 12x8", "Final stats: 0 generations"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output %q missing %q", out.String(), want)
		}
	}
}

// countingSource draws 0, 1, 2, ... reduced into [0, n).
type countingSource struct{ next int }

func (c *countingSource) IntN(n int) int {
	v := c.next % n
	c.next++
	return v
}

func TestRunRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.AutoRestart = true
	config.MaxGenerations = 4
	config.SeedDenominator = 1 // Everything alive

	var out bytes.Buffer
	// Nothing is born and nothing survives, so every generation after a reseed is empty.
	g, err := initializeGame(config, rules.MustParse("sb"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if err = g.run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if g.engine.Generation() != 4 {
		t.Fatalf("stopped at generation %d, expected 4", g.engine.Generation())
	}
	if g.lastRestartGen != 3 {
		t.Fatalf("last restart at generation %d, expected 3", g.lastRestartGen)
	}
	if n := strings.Count(out.String(), "Restarting due to extinction"); n != 3 {
		t.Fatalf("restarted %d times, expected 3", n)
	}
	if strings.Contains(out.String(), "Stopped: extinction") {
		t.Fatal("auto restart should not stop on extinction")
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := testConfig()
	config.RefreshInterval = 2
	config.StagnationThreshold = 3

	g, err := initializeGame(config, rules.Conway, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		advance       int
		living        int
		stagnantCount int
		want          bool
		reason        string
	}{
		{0, 10, 0, false, ""},
		{0, 0, 0, true, "extinction"},
		{0, 10, 3, true, "stagnation detected"},
		{1, 10, 0, false, ""},
		{1, 10, 0, true, "periodic refresh"},
	}
	for _, tt := range tests {
		for range tt.advance {
			g.engine.Advance()
		}
		restart, reason := g.checkRestartConditions(tt.living, tt.stagnantCount)
		if restart != tt.want || reason != tt.reason {
			t.Fatalf("generation %d: got (%v, %q), expected (%v, %q)",
				g.engine.Generation(), restart, reason, tt.want, tt.reason)
		}
	}
}

func TestRunInjectsLifeWhileStagnant(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 4
	config.InjectionCount = 3
	config.StagnationThreshold = 5

	var out bytes.Buffer
	// Everything survives and nothing is born, so injected cells stay put.
	g, err := initializeGame(config, rules.MustParse("s012345678b"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if err = g.engine.SeedPoints(model.Point{}); err != nil {
		t.Fatal(err)
	}
	g.rng = &countingSource{}

	if err = g.run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// One injection at generation 2: (0,1), (2,3) and (4,5).
	if got := g.engine.Population(); got != 4 {
		t.Fatalf("population = %d, expected 4", got)
	}
	for _, p := range []model.Point{{X: 0, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 5}} {
		if alive, err := g.engine.CellAt(p.X, p.Y); err != nil || !alive {
			t.Fatalf("injected cell %v not alive (err=%v)", p, err)
		}
	}
}
