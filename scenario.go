package main

import (
	"fmt"

	"scenario-camera/canvas"
	"scenario-camera/graph"
)

// BuildScenario lays out the world node and its tile grid. Tiles start one gap
// in from the world's lower-left corner; rows grow upward.
func BuildScenario(s Settings) *graph.Node {
	world := graph.NewNode("world", canvas.Size{W: s.World.Width, H: s.World.Height}, nil)

	step := s.Tiles.Size + s.Tiles.Gap
	for row := 0; row < s.Tiles.Rows; row++ {
		for col := 0; col < s.Tiles.Columns; col++ {
			i := row*s.Tiles.Columns + col
			tile := graph.NewNode(
				fmt.Sprintf("tile-%d-%d", col, row),
				canvas.Size{W: s.Tiles.Size, H: s.Tiles.Size},
				TilePalette[i%len(TilePalette)],
			)
			tile.SetPosition(canvas.Point{
				X: s.Tiles.Gap + float64(col)*step,
				Y: s.Tiles.Gap + float64(row)*step,
			})
			world.AddChild(tile)
		}
	}
	return world
}
