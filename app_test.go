package lantern

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppWiring(t *testing.T) {
	app := NewApp(RunConfig{Width: 320, Height: 240})
	require.NotNil(t, app.Canvas())
	assert.Equal(t, 320, app.Canvas().Width())
	assert.Equal(t, 240, app.Canvas().Height())
	assert.Equal(t, "screenshots", app.cfg.ScreenshotDir)
	assert.Nil(t, app.fps)

	w, h := app.Layout(1000, 1000)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestAppUpdateRunsOneFrame(t *testing.T) {
	app := NewApp(RunConfig{Width: 64, Height: 64})
	var log []string
	st := &traceState{name: "play", log: &log}
	app.Dispatcher().Transition(st)
	app.Loop().Start()

	require.NoError(t, app.Update())
	require.NoError(t, app.Update())
	assert.Equal(t, []string{"setup play", "tick play", "tick play"}, log)
	assert.Equal(t, uint64(2), app.Loop().Frame())
}

func TestAppUpdateTerminatesWhenStopped(t *testing.T) {
	app := NewApp(RunConfig{Width: 64, Height: 64})
	err := app.Update()
	assert.True(t, errors.Is(err, ebiten.Termination))
}

func TestAppStateStopsLoop(t *testing.T) {
	app := NewApp(RunConfig{Width: 64, Height: 64})
	var log []string
	st := &traceState{name: "once", log: &log, onTick: func(func(State)) { app.Loop().Stop() }}
	app.Dispatcher().Transition(st)
	app.Loop().Start()

	require.NoError(t, app.Update())
	assert.ErrorIs(t, app.Update(), ebiten.Termination)
}

func TestAppRunNilState(t *testing.T) {
	app := NewApp(RunConfig{Width: 64, Height: 64})
	assert.Error(t, app.Run(nil))
}
