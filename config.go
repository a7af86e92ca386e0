package main

import "image/color"

const (
	// --- Window ---
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	WindowTitle         = "Scenario Camera"

	// --- World & Tiles ---
	DefaultWorldWidth  = 3000.0
	DefaultWorldHeight = 2000.0
	DefaultTileColumns = 10
	DefaultTileRows    = 6
	DefaultTileSize    = 200.0
	DefaultTileGap     = 80.0
	TileLabelMinSize   = 60.0 // on-screen px below which tile labels are hidden

	// --- Input ---
	ZoomSpeed = 0.1 // wheel notch -> 10% scale change
	KeyStep   = 0.5 // notches per tick while +/- is held

	// --- Grid ---
	GridSize = 100.0

	// --- Font ---
	DefaultFontPath = "fonts/Roboto-Regular.ttf"
	FontSize        = 14
)

var (
	// --- Colors ---
	ColorVoid        = color.RGBA{20, 20, 25, 255}
	ColorGrid        = color.RGBA{255, 255, 255, 20}
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
	ColorShadow      = color.RGBA{0, 0, 0, 100}
	ColorTileLabel   = color.RGBA{240, 240, 240, 255}

	TilePalette = []color.RGBA{
		{100, 149, 237, 255},
		{255, 105, 180, 255},
		{60, 179, 113, 255},
		{255, 140, 0, 255},
		{150, 110, 220, 255},
	}
)
