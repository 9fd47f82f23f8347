//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaskPainter uploads a threshold map into a single RGBA image.
type MaskPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
}

// NewMaskPainter allocates a painter for a size*size map.
func NewMaskPainter(size int) *MaskPainter {
	mp := &MaskPainter{size: size, buf: make([]byte, 4*size*size)}
	mp.img = ebiten.NewImage(size, size)
	return mp
}

// BlitCut draws the binary pattern of ranks below cut, tiled tiles*tiles times.
func (mp *MaskPainter) BlitCut(dst *ebiten.Image, ranks []uint32, cut int, on, off color.Color, scale, tiles int) {
	if len(ranks) != mp.size*mp.size {
		return
	}
	fillThresholdRGBA(mp.buf, ranks, cut, on, off)
	mp.draw(dst, scale, tiles)
}

// BlitLevels draws the map as a grayscale ramp, tiled tiles*tiles times.
func (mp *MaskPainter) BlitLevels(dst *ebiten.Image, levels []uint8, scale, tiles int) {
	if len(levels) != mp.size*mp.size {
		return
	}
	fillLevelsRGBA(mp.buf, levels)
	mp.draw(dst, scale, tiles)
}

func (mp *MaskPainter) draw(dst *ebiten.Image, scale, tiles int) {
	mp.img.WritePixels(mp.buf)
	if tiles <= 0 {
		tiles = 1
	}
	span := float64(mp.size * scale)
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(scale), float64(scale))
			op.GeoM.Translate(float64(tx)*span, float64(ty)*span)
			dst.DrawImage(mp.img, op)
		}
	}
}

// Size returns the side length of the underlying image.
func (mp *MaskPainter) Size() int { return mp.size }
