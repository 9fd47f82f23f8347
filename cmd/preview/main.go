//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"dithermap/internal/app"
	"dithermap/pkg/bluenoise"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	bluenoise.SetLogger(logger)

	game := app.New(*cfg, bluenoise.NewCache(bluenoise.WithLogger(logger)))
	side, _ := game.Layout(0, 0)

	ebiten.SetWindowTitle("dithermap — " + game.Mode().Label)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
