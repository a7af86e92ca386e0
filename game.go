package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"scenario-camera/canvas"
	"scenario-camera/graph"
	"scenario-camera/input"
	"scenario-camera/ui"
)

type Game struct {
	settings Settings
	world    *graph.Node
	camera   *canvas.Camera
	face     font.Face
	log      *zap.Logger

	// Sub-systems
	recognizer *input.Recognizer
	poller     *input.Poller
	ui         *ui.UISystem
}

// NewGame wires the camera over world and applies the camera settings.
func NewGame(s Settings, world *graph.Node, face font.Face, log *zap.Logger) (*Game, error) {
	viewport := canvas.Size{W: float64(s.Window.Width), H: float64(s.Window.Height)}
	cam := canvas.New(viewport, world)
	cam.SetLogger(log.Named("camera"))
	if err := cam.SetScaleRange(s.Camera.ScaleMin, s.Camera.ScaleMax); err != nil {
		return nil, errors.Wrap(err, "camera")
	}

	g := &Game{
		settings: s,
		world:    world,
		camera:   cam,
		face:     face,
		log:      log,
	}

	g.recognizer = input.NewRecognizer(cam, log.Named("input"))
	cam.BindScaleRecognizer(g.recognizer)
	g.poller = input.NewPoller(g.recognizer, ZoomSpeed, KeyStep)

	cam.SetEnabled(s.Camera.Enabled)
	cam.SetZoomEnabled(s.Camera.Zoom)
	cam.SetClampEnabled(s.Camera.Clamp)
	cam.SetPanEnabled(s.Camera.Pan)

	g.ui = ui.NewUISystem(
		func() font.Face { return g.face },
		func() (int, int) { return s.Window.Width, s.Window.Height },
		DrawTextLines,
		ui.Toggle{Label: "pan", Get: cam.PanEnabled, Set: cam.SetPanEnabled},
		ui.Toggle{Label: "clamp", Get: cam.ClampEnabled, Set: cam.SetClampEnabled},
		ui.Toggle{Label: "zoom", Get: cam.ZoomEnabled, Set: cam.SetZoomEnabled},
		ui.Toggle{Label: "camera", Get: cam.Enabled, Set: cam.SetEnabled},
	)
	g.ui.Debug.Camera = cam

	log.Info("camera ready",
		zap.Any("world", cam.WorldBounds()),
		zap.Float64("scale_min", s.Camera.ScaleMin),
		zap.Float64("scale_max", s.Camera.ScaleMax))
	return g, nil
}

func (g *Game) Camera() *canvas.Camera { return g.camera }

func (g *Game) Update() error {
	g.ui.Update()
	g.poller.Update(g.ui.IsMouseOver)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	canvas.DrawBackgroundGrid(g.camera, screen, GridSize, ColorGrid, ColorVoid, ColorOriginCross)

	scene := g.camera.SceneMatrix()
	scale := g.world.Scale()
	g.world.Walk(func(n *graph.Node, toRoot mgl64.Mat3) bool {
		if n.Color == nil {
			return true
		}
		r := canvas.MapRect(scene.Mul3(toRoot), canvas.Rect{W: n.Size.W, H: n.Size.H})
		shadow := float32(5 * scale)
		vector.DrawFilledRect(screen, float32(r.X)+shadow, float32(r.Y)+shadow, float32(r.W), float32(r.H), ColorShadow, false)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), n.Color, false)
		if r.W >= TileLabelMinSize {
			DrawTextLines(screen, g.face, n.Name, int(r.X)+6, int(r.Y)+6, ColorTileLabel)
		}
		return true
	})

	g.ui.Draw(screen)
}

// Layout keeps the logical screen at the configured window size; the camera
// viewport is fixed when the camera is built.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}
