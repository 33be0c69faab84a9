package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testSheet builds a sheet where each pixel encodes its own location, so we
// can tell exactly where content moved to.
func testSheet(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestRealignShiftsFramesDown(t *testing.T) {
	cfg := &Config{FrameWidth: 146, FrameHeight: 64}
	in := testSheet(292, 128)

	out := Realign(in, cfg, 5)

	assert.Equal(t, in.Bounds(), out.Bounds())

	mismatched := 0
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			for y := 0; y < 64; y++ {
				for x := 0; x < 146; x++ {
					ox := col*146 + x
					oy := row*64 + y

					// top 5 rows of each frame vacated, the rest
					// shows the frame's own content 5px higher
					want := color.RGBA{}
					if y >= 5 {
						want = in.RGBAAt(ox, oy-5)
					}

					if out.RGBAAt(ox, oy) != want {
						mismatched++
					}
				}
			}
		}
	}
	assert.Equal(t, 0, mismatched)
}

func TestRealignShiftsFramesUp(t *testing.T) {
	cfg := &Config{FrameWidth: 8, FrameHeight: 8}
	in := testSheet(16, 8)

	out := Realign(in, cfg, -3)

	mismatched := 0
	for col := 0; col < 2; col++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				ox := col*8 + x

				// rows 0-4 show content from 3px lower, the
				// bottom 3 rows are vacated
				want := color.RGBA{}
				if y < 5 {
					want = in.RGBAAt(ox, y+3)
				}

				if out.RGBAAt(ox, y) != want {
					mismatched++
				}
			}
		}
	}
	assert.Equal(t, 0, mismatched)
}

func TestRealignIgnoresRemainderStrips(t *testing.T) {
	cfg := &Config{FrameWidth: 8, FrameHeight: 8}
	in := testSheet(20, 11) // 2x1 whole frames + 4px / 3px remainder strips

	out := Realign(in, cfg, 2)

	assert.Equal(t, in.Bounds(), out.Bounds())

	opaque := 0
	for y := 0; y < 11; y++ {
		for x := 0; x < 20; x++ {
			if x < 16 && y < 8 {
				continue // inside the whole frame grid
			}
			if out.RGBAAt(x, y).A != 0 {
				opaque++
			}
		}
	}
	assert.Equal(t, 0, opaque)

	// whole frames still moved as usual
	assert.Equal(t, in.RGBAAt(3, 1), out.RGBAAt(3, 3))
}

func TestRealignOffsetLargerThanFrame(t *testing.T) {
	cfg := &Config{FrameWidth: 8, FrameHeight: 8}

	out := Realign(testSheet(8, 8), cfg, 12)

	opaque := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if out.RGBAAt(x, y).A != 0 {
				opaque++
			}
		}
	}
	assert.Equal(t, 0, opaque)
}

func TestRealignTwiceShiftsTwice(t *testing.T) {
	cfg := &Config{FrameWidth: 8, FrameHeight: 8}
	in := testSheet(8, 8)

	once := Realign(in, cfg, 2)
	twice := Realign(once, cfg, 2)

	assert.Equal(t, in.RGBAAt(0, 0), twice.RGBAAt(0, 4))
	assert.Equal(t, color.RGBA{}, twice.RGBAAt(0, 3))
}

func TestRealignZeroConfig(t *testing.T) {
	in := testSheet(292, 128)

	// unset frame dimensions fall back to the 146x64 defaults
	out := Realign(in, &Config{}, 5)

	assert.Equal(t, in.Bounds(), out.Bounds())
	assert.Equal(t, in.RGBAAt(10, 0), out.RGBAAt(10, 5))
	assert.Equal(t, color.RGBA{}, out.RGBAAt(10, 4))
}

func TestSheetRealign(t *testing.T) {
	cfg := &Config{FrameWidth: 8, FrameHeight: 8}
	in := testSheet(16, 16)

	out := NewSheet(in, cfg).Realign(1)

	assert.Equal(t, in.Bounds(), out.Bounds())
	assert.Equal(t, in.RGBAAt(10, 8), out.RGBAAt(10, 9))
	assert.Equal(t, color.RGBA{}, out.RGBAAt(10, 8))
}
