package sprite

import (
	"image"

	"github.com/nfnt/resize"
)

// FitFrames forces a sheet to be a width, height of some multiple(s) of the
// configured frame size. We round to the nearest whole frame: if the sheet
// is more than half a frame over a multiple it grows to the next one,
// otherwise it shrinks. A sheet smaller than one frame is scaled up to
// exactly one.
func FitFrames(in image.Image, cfg *Config) image.Image {
	cfg = cfg.sane()

	fw := int(cfg.FrameWidth)
	fh := int(cfg.FrameHeight)

	width := in.Bounds().Max.X - in.Bounds().Min.X
	height := in.Bounds().Max.Y - in.Bounds().Min.Y

	fitx := width / fw
	fity := height / fh

	if width%fw > fw/2 {
		fitx++
	}
	if height%fh > fh/2 {
		fity++
	}

	if fitx < 1 {
		fitx = 1
	}
	if fity < 1 {
		fity = 1
	}

	if fitx*fw == width && fity*fh == height {
		return in
	}

	return resize.Resize(
		uint(fitx*fw),
		uint(fity*fh),
		in,
		resize.Lanczos3,
	)
}

// Fit returns this sheet resized to the nearest whole number of frames.
func (s *Sheet) Fit() *Sheet {
	return &Sheet{img: FitFrames(s.img, s.cfg), cfg: s.cfg}
}
