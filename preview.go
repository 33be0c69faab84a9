package sprite

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// RenderGrid draws the frame grid over the sheet (frame borders plus a
// "col,row" label per frame) so frame alignment can be checked by eye
// before / after a shift.
func RenderGrid(in image.Image, cfg *Config) image.Image {
	cfg = cfg.sane()

	bnds := in.Bounds()
	fw := int(cfg.FrameWidth)
	fh := int(cfg.FrameHeight)

	cols := (bnds.Max.X - bnds.Min.X) / fw
	rows := (bnds.Max.Y - bnds.Min.Y) / fh

	dc := gg.NewContext(bnds.Max.X-bnds.Min.X, bnds.Max.Y-bnds.Min.Y)
	dc.DrawImage(in, 0, 0)

	dc.SetRGBA(1, 0, 0, 0.8)
	dc.SetLineWidth(1)

	for col := 0; col <= cols; col++ {
		x := float64(col * fw)
		dc.DrawLine(x, 0, x, float64(rows*fh))
	}
	for row := 0; row <= rows; row++ {
		y := float64(row * fh)
		dc.DrawLine(0, y, float64(cols*fw), y)
	}
	dc.Stroke()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			dc.DrawString(fmt.Sprintf("%d,%d", col, row), float64(col*fw)+2, float64(row*fh)+12)
		}
	}

	return dc.Image()
}
