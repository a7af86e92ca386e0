package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"scenario-camera/canvas"
)

func TestBuildScenario(t *testing.T) {
	s := DefaultSettings()
	world := BuildScenario(s)

	require.Len(t, world.Children(), s.Tiles.Columns*s.Tiles.Rows)
	assert.Equal(t, canvas.Rect{W: s.World.Width, H: s.World.Height}, world.Frame())

	last := world.Find("tile-9-5")
	require.NotNil(t, last)
	assert.Equal(t, canvas.Point{X: 80 + 9*280, Y: 80 + 5*280}, last.Position())
}

func TestScenarioGrowsWorldToFitTiles(t *testing.T) {
	s := DefaultSettings()
	s.World = WorldSettings{Width: 100, Height: 100}
	s.Tiles = TileSettings{Columns: 2, Rows: 1, Size: 100, Gap: 10}

	world := BuildScenario(s)
	assert.Equal(t, canvas.Rect{W: 220, H: 110}, world.Frame())
}

func TestNewGameAppliesCameraSettings(t *testing.T) {
	s := DefaultSettings()
	s.Camera.ScaleMax = 2
	s.Camera.Enabled = false
	s.Camera.Clamp = false

	g, err := NewGame(s, BuildScenario(s), basicfont.Face7x13, zap.NewNop())
	require.NoError(t, err)

	cam := g.Camera()
	lo, hi := cam.ScaleRange()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 2.0, hi)
	assert.False(t, cam.Enabled())
	assert.False(t, g.recognizer.ScaleEnabled())
	assert.False(t, cam.ClampEnabled())
	assert.True(t, cam.PanEnabled())
	assert.Equal(t, canvas.Size{W: DefaultWindowWidth, H: DefaultWindowHeight}, cam.Viewport())

	w, h := g.Layout(10, 10)
	assert.Equal(t, DefaultWindowWidth, w)
	assert.Equal(t, DefaultWindowHeight, h)
}

func TestNewGameRejectsScaleRange(t *testing.T) {
	s := DefaultSettings()
	s.Camera.ScaleMin = 3
	s.Camera.ScaleMax = 2

	_, err := NewGame(s, BuildScenario(s), nil, zap.NewNop())
	assert.Error(t, err)
}

func TestHUDTogglesDriveCamera(t *testing.T) {
	s := DefaultSettings()
	g, err := NewGame(s, BuildScenario(s), nil, zap.NewNop())
	require.NoError(t, err)

	// rightmost button is the first toggle, "pan"
	x := s.Window.Width - 10 - 5
	require.True(t, g.ui.Click(x, 15))
	assert.False(t, g.Camera().PanEnabled())
}
