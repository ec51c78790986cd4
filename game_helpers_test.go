package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Headless = true
	config.FrameRate = time.Millisecond
	config.Patterns = []string{"Blinker@1,1"}
	return config
}

func newTestGame(t *testing.T, config utils.Config) (*game, *observer.ObservedLogs, *utils.Metrics) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	metrics := utils.NewMetrics()
	g := initializeGame(config, zap.New(core), metrics)
	g.out = &bytes.Buffer{}
	return g, logs, metrics
}

func TestInitializeGamePlacesPatterns(t *testing.T) {
	config := testConfig()
	config.Patterns = []string{"LLWS@0,0", "LLWS@0,0", "Nope@3,3", "garbage"}

	g, logs, _ := newTestGame(t, config)

	assert.Equal(t, 9, g.live.Len())
	assert.Equal(t, 1, logs.FilterMessage("unknown pattern").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping pattern placement").Len())
}

func TestTickAdvancesGeneration(t *testing.T) {
	g, _, metrics := newTestGame(t, testConfig())
	horizontal := g.live.Clone()

	require.False(t, g.tick())
	assert.Equal(t, 1, g.generation)
	assert.True(t, g.live.Equal(model.NextGeneration(horizontal)))

	require.False(t, g.tick())
	assert.True(t, g.live.Equal(horizontal))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Generations))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Population))
}

func TestTickStopsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 3
	g, logs, _ := newTestGame(t, config)

	ticks := 0
	for !g.tick() {
		ticks++
		require.Less(t, ticks, 10)
	}
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 1, logs.FilterMessage("reached maximum generations").Len())
}

func TestTickRestartsOnStagnation(t *testing.T) {
	config := testConfig()
	config.StagnationThreshold = 2
	config.InjectionCount = 0
	g, logs, metrics := newTestGame(t, config)

	for range 6 {
		require.False(t, g.tick())
	}

	assert.Positive(t, testutil.ToFloat64(metrics.Restarts.WithLabelValues("stagnation")))
	assert.Positive(t, logs.FilterMessage("restarted board").Len())
	assert.Equal(t, 3, g.live.Len(), "reseeded blinker")
}

func TestTickRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.Patterns = nil
	g, _, metrics := newTestGame(t, config)

	require.False(t, g.tick())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Restarts.WithLabelValues("extinction")))
}

func TestTickWithoutAutoRestart(t *testing.T) {
	config := testConfig()
	config.Patterns = nil
	config.AutoRestart = false
	g, _, metrics := newTestGame(t, config)

	require.False(t, g.tick())
	assert.Equal(t, 0, testutil.CollectAndCount(metrics.Restarts))
	assert.Equal(t, 0, g.live.Len())
}

func TestDisplayGameStatus(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig())
	var buf bytes.Buffer
	g.out = &buf

	g.generation = 4
	g.displayGameStatus(3, "Active")

	assert.Contains(t, buf.String(), "Gen: 4 | Living: 3 | Status: Active")
	assert.Contains(t, buf.String(), "Generations since restart: 4")
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()

	tests := []struct {
		name          string
		livingCells   int
		stagnantCount int
		generation    int
		want          bool
		reason        string
	}{
		{name: "extinct", livingCells: 0, want: true, reason: "extinction"},
		{name: "stagnant", livingCells: 5, stagnantCount: config.StagnationThreshold, generation: 7, want: true, reason: "stagnation"},
		{name: "periodic refresh", livingCells: 5, generation: periodicRefresh, want: true, reason: "periodic_refresh"},
		{name: "active", livingCells: 5, stagnantCount: 1, generation: 7},
		{name: "first generation", livingCells: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := checkRestartConditions(tt.livingCells, tt.stagnantCount, tt.generation, config)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 0
	g, logs, _ := newTestGame(t, config)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, g.run(ctx))
	assert.Equal(t, 1, logs.FilterMessage("shutting down").Len())
}

func TestRunEndsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 5
	g, _, _ := newTestGame(t, config)

	require.NoError(t, g.run(context.Background()))
	assert.Equal(t, 5, g.generation)
}
