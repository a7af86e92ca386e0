package main

import (
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadHUDFont loads a TrueType font from path. Any failure falls back to
// basicfont.Face7x13.
func LoadHUDFont(path string, log *zap.Logger) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	log = log.With(zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		log.Info("HUD font not found, using basic font", zap.Error(err))
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Warn("HUD font parse error, using basic font", zap.Error(err))
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: FontSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Warn("HUD font face error, using basic font", zap.Error(err))
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	// y is the top of the first line; text.Draw wants the baseline
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+i*lineHeight, clr)
	}
}
