//go:build ebiten

package ui

import (
	"image/color"

	"dithermap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudCharWidth  = 7
)

// HUD draws the current parameter snapshot in a translucent box at the top
// left of the preview.
type HUD struct {
	lines   []string
	visible bool
	pixel   *ebiten.Image
	face    text.Face
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true, face: text.NewGoXFace(basicfont.Face7x13)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update replaces the displayed parameters.
func (h *HUD) Update(snap core.ParameterSnapshot) {
	h.lines = snap.Lines()
}

// Draw renders the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible || len(h.lines) == 0 {
		return
	}
	widest := 0
	for _, l := range h.lines {
		widest = max(widest, len(l))
	}
	w := widest*hudCharWidth + 2*hudPadding
	ht := len(h.lines)*hudLineHeight + 2*hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(ht))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 24, A: 200})
	screen.DrawImage(h.pixel, op)

	for i, l := range h.lines {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(hudPadding, float64(hudPadding+i*hudLineHeight))
		opts.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, l, h.face, opts)
	}
}
