package render

import (
	"image/color"
	"testing"
)

func TestFillThresholdRGBA(t *testing.T) {
	ranks := []uint32{3, 0, 2, 1}
	buf := make([]byte, 4*len(ranks))
	fillThresholdRGBA(buf, ranks, 2, color.White, color.Black)

	want := []bool{false, true, false, true}
	for i, on := range want {
		px := buf[i*4 : i*4+4]
		if on && (px[0] != 0xff || px[3] != 0xff) {
			t.Fatalf("cell %d = %v, want white", i, px)
		}
		if !on && (px[0] != 0 || px[3] != 0xff) {
			t.Fatalf("cell %d = %v, want black", i, px)
		}
	}
}

func TestFillLevelsRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillLevelsRGBA(buf, []uint8{10, 200})
	if buf[0] != 10 || buf[2] != 10 || buf[4] != 200 || buf[7] != 0xff {
		t.Fatalf("unexpected pixels %v", buf)
	}
}
