package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"scenario-camera/engine"
	"scenario-camera/logging"
)

func main() {
	settingsPath := flag.String("settings", "", "YAML settings file (defaults are used when empty)")
	replayPath := flag.String("replay", "", "Starlark gesture script to replay before the window opens")
	dumpPath := flag.String("dump-settings", "", "write the effective settings to this file and exit")
	devmode := flag.Bool("dev", false, "development logging")
	logFile := flag.String("log", "", "also write JSON logs to this file")
	flag.Parse()

	logger, closeLog, err := logging.Init(*devmode, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(logger, *settingsPath, *replayPath, *dumpPath); err != nil {
		logger.Error("scenario-camera", zap.Error(err))
		closeLog()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, settingsPath, replayPath, dumpPath string) error {
	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	if dumpPath != "" {
		return settings.Save(dumpPath)
	}

	world := BuildScenario(settings)
	face := LoadHUDFont(settings.Font, logger.Named("font"))
	g, err := NewGame(settings, world, face, logger)
	if err != nil {
		return err
	}

	if replayPath != "" {
		if err := replay(logger, g, replayPath); err != nil {
			return err
		}
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	return ebiten.RunGame(g)
}

func replay(logger *zap.Logger, g *Game, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read replay script")
	}
	ctx := logging.With(context.Background(), logger)
	r := engine.NewReplay(g.Camera())
	globals, err := r.Run(ctx, path, string(src))
	if err != nil {
		g.ui.Debug.SetError(err.Error())
		logger.Error("replay failed", zap.String("script", path), zap.Error(err))
		return nil
	}
	pos := g.Camera().Position()
	logger.Info("replay done",
		zap.String("script", path),
		zap.Int("samples", r.Samples()),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Float64("scale", g.Camera().Scale()),
		zap.Any("globals", globals))
	return nil
}
