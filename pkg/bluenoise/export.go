package bluenoise

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"

	"dithermap/pkg/core"

	xdraw "golang.org/x/image/draw"
)

// Levels maps each rank onto 0..255 (rank*256/cells), row-major. This is the
// byte layout ordered-dither consumers index as levels[(y%size)*size + x%size].
func Levels(g *core.RankGrid) []uint8 {
	ranks := g.Ranks()
	total := uint64(len(ranks))
	out := make([]uint8, len(ranks))
	for i, r := range ranks {
		out[i] = uint8(uint64(r) * 256 / total)
	}
	return out
}

// Image returns the levels of g as a grayscale image.
func Image(g *core.RankGrid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Size, g.Size))
	copy(img.Pix, Levels(g))
	return img
}

// Scaled returns Image(g) enlarged by an integer factor with nearest-neighbour
// sampling so individual cells stay crisp.
func Scaled(g *core.RankGrid, scale int) image.Image {
	src := Image(g)
	if scale <= 1 {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, g.Size*scale, g.Size*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// WritePNG encodes g as an 8-bit grayscale PNG.
func WritePNG(w io.Writer, g *core.RankGrid, scale int) error {
	if err := png.Encode(w, Scaled(g, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteText writes one row of space-separated ranks per line.
func WriteText(w io.Writer, g *core.RankGrid) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 8)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			buf = strconv.AppendUint(buf[:0], uint64(g.At(x, y)), 10)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ranks: %w", err)
	}
	return nil
}
