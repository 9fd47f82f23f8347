//go:build ebiten

package app

import (
	"image/color"
	"time"

	"dithermap/internal/core"
	"dithermap/internal/render"
	"dithermap/internal/ui"
	"dithermap/pkg/bluenoise"
	pcore "dithermap/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game previews a threshold map: the binary pattern at an animated cut, or
// the raw rank levels.
type Game struct {
	cfg     Config
	cache   *bluenoise.Cache
	painter *render.MaskPainter
	hud     *ui.HUD
	sweep   *Sweep

	status  Status
	pending <-chan bluenoise.Result
	grid    *pcore.RankGrid
	levels  []uint8

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game and starts loading the configured map in the
// background.
func New(cfg Config, cache *bluenoise.Cache) *Game {
	g := &Game{
		cfg:      cfg,
		cache:    cache,
		painter:  render.NewMaskPainter(cfg.Size),
		hud:      ui.NewHUD(),
		sweep:    NewSweep(cfg.Size*cfg.Size, cfg.Sweep),
		status:   Status{Size: cfg.Size, Seed: cfg.Seed, Mode: cfg.Mode},
		onColor:  color.White,
		offColor: color.Black,
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset switches to the map for seed. Maps already generated this session
// come straight from the cache.
func (g *Game) Reset(seed int64) {
	g.status.Seed = seed
	g.status.Err = nil
	g.grid, g.levels = nil, nil
	g.pending = nil
	if !modeUsesMap(g.status.Mode) {
		g.status.Loading = false
		return
	}
	g.status.Loading = true
	g.pending = g.cache.Async(g.cfg.Size, seed)
}

// Update handles per-frame logic and advances the sweep.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sweep.Paused = !g.sweep.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.sweep.Step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.sweep.Step(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.sweep.Step(g.cfg.Size)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.sweep.Step(-g.cfg.Size)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.status.Levels = !g.status.Levels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.status.Mode = nextMode(g.status.Mode)
		g.Reset(g.status.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.status.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.receive()
	if g.grid != nil {
		g.status.Cut = g.sweep.Update(1 / float32(ebiten.TPS()))
	}
	g.hud.Update(g.status.Snapshot())
	return nil
}

// receive takes the generated map once the background load has delivered it.
func (g *Game) receive() {
	if g.pending == nil {
		return
	}
	select {
	case res := <-g.pending:
		g.pending = nil
		g.status.Loading = false
		if res.Err != nil {
			g.status.Err = res.Err
			bluenoise.Logger().Warn("threshold map generation failed", "size", res.Size, "seed", res.Seed, "err", res.Err)
			return
		}
		g.grid = res.Grid
		g.levels = bluenoise.Levels(res.Grid)
	default:
	}
}

// Draw renders the current map state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	if g.grid != nil {
		if g.status.Levels {
			g.painter.BlitLevels(screen, g.levels, g.cfg.Scale, g.cfg.Tiles)
		} else {
			g.painter.BlitCut(screen, g.grid.Ranks(), g.status.Cut, g.onColor, g.offColor, g.cfg.Scale, g.cfg.Tiles)
		}
	}
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.cfg.Size * g.cfg.Scale * g.cfg.Tiles
	return side, side
}

// Mode returns the registered mode currently previewed.
func (g *Game) Mode() core.Mode {
	m, _ := core.LookupMode(g.status.Mode)
	return m
}
