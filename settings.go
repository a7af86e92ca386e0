package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type WorldSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type TileSettings struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Size    float64 `yaml:"size"`
	Gap     float64 `yaml:"gap"`
}

type CameraSettings struct {
	ScaleMin float64 `yaml:"scale_min"`
	ScaleMax float64 `yaml:"scale_max"`
	Enabled  bool    `yaml:"enabled"`
	Zoom     bool    `yaml:"zoom"`
	Clamp    bool    `yaml:"clamp"`
	Pan      bool    `yaml:"pan"`
}

// Settings configures the demo. Fields missing from a settings file keep their
// defaults.
type Settings struct {
	Window WindowSettings `yaml:"window"`
	World  WorldSettings  `yaml:"world"`
	Tiles  TileSettings   `yaml:"tiles"`
	Camera CameraSettings `yaml:"camera"`
	Font   string         `yaml:"font"`
}

func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  WindowTitle,
		},
		World: WorldSettings{
			Width:  DefaultWorldWidth,
			Height: DefaultWorldHeight,
		},
		Tiles: TileSettings{
			Columns: DefaultTileColumns,
			Rows:    DefaultTileRows,
			Size:    DefaultTileSize,
			Gap:     DefaultTileGap,
		},
		Camera: CameraSettings{
			ScaleMin: 1,
			ScaleMax: 1.5,
			Enabled:  true,
			Zoom:     true,
			Clamp:    true,
			Pan:      true,
		},
		Font: DefaultFontPath,
	}
}

// LoadSettings reads a YAML file over DefaultSettings. An empty path returns
// the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "read settings")
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "parse settings %s", path)
	}
	if err := s.Validate(); err != nil {
		return s, errors.Wrapf(err, "invalid settings %s", path)
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.World.Width < 0 || s.World.Height < 0 {
		return errors.Errorf("world size must not be negative, got %gx%g", s.World.Width, s.World.Height)
	}
	if s.Tiles.Columns < 0 || s.Tiles.Rows < 0 {
		return errors.Errorf("tile grid must not be negative, got %dx%d", s.Tiles.Columns, s.Tiles.Rows)
	}
	if s.Tiles.Size <= 0 || s.Tiles.Gap < 0 {
		return errors.Errorf("bad tile size %g / gap %g", s.Tiles.Size, s.Tiles.Gap)
	}
	if s.Camera.ScaleMin <= 0 || s.Camera.ScaleMin > s.Camera.ScaleMax {
		return errors.Errorf("bad scale range [%g, %g]", s.Camera.ScaleMin, s.Camera.ScaleMax)
	}
	return nil
}

// Save writes s as YAML, in the same layout LoadSettings reads.
func (s Settings) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create settings")
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return errors.Wrapf(err, "write settings %s", path)
	}
	return enc.Close()
}
