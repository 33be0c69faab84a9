/* file holds the frame realignment transform.
 */
package sprite

import (
	"image"
	"image/draw"
)

// Realign rebuilds a spritesheet with every whole frame's content shifted
// vertically by yOffset pixels (positive shifts down). The output sheet is
// the same size as the input; space a frame vacates is left transparent and
// content pushed past the frame edge is clipped. Pixels outside the whole
// frame grid (right / bottom remainder strips) are left transparent too.
func Realign(in image.Image, cfg *Config, yOffset int) *image.RGBA {
	cfg = cfg.sane()

	bnds := in.Bounds()
	fw := int(cfg.FrameWidth)
	fh := int(cfg.FrameHeight)

	cols := (bnds.Max.X - bnds.Min.X) / fw
	rows := (bnds.Max.Y - bnds.Min.Y) / fh

	out := image.NewRGBA(image.Rect(0, 0, bnds.Max.X-bnds.Min.X, bnds.Max.Y-bnds.Min.Y))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			frame := image.NewRGBA(image.Rect(0, 0, fw, fh))

			// paste the frame's content into a blank frame at (0, yOffset).
			// Rows that land outside the frame are clipped, in either direction.
			drect := image.Rect(0, yOffset, fw, yOffset+fh).Intersect(frame.Bounds())
			spnt := image.Pt(bnds.Min.X+col*fw, bnds.Min.Y+row*fh)
			if yOffset < 0 {
				spnt.Y -= yOffset
			}
			draw.Draw(frame, drect, in, spnt, draw.Src)

			draw.Draw(
				out,
				image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh),
				frame,
				image.ZP,
				draw.Src,
			)
		}
	}

	return out
}

// Realign returns a new sheet image with every frame's content shifted
// down yOffset px.
func (s *Sheet) Realign(yOffset int) *image.RGBA {
	return Realign(s.img, s.cfg, yOffset)
}
