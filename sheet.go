/* file holds the spritesheet wrapper & image io helpers.
 */
package sprite

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/ioutil"
)

// Sheet is a decoded spritesheet divided into a grid of fixed size frames.
// Frames are addressed (col, row) from the top left. Remainder pixels at
// the right / bottom edges that don't make up a whole frame are ignored.
type Sheet struct {
	img image.Image
	cfg *Config
}

// NewSheet wraps an already decoded image as a spritesheet.
// Frame dimensions left unset fall back to defaults.
func NewSheet(img image.Image, cfg *Config) *Sheet {
	return &Sheet{img: img, cfg: cfg.sane()}
}

// OpenSheet reads & decodes the spritesheet at the given path.
func OpenSheet(fpath string, cfg *Config) (*Sheet, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	return DecodeSheet(bytes.NewBuffer(data), cfg)
}

// DecodeSheet reads a spritesheet image from the given stream.
func DecodeSheet(r io.Reader, cfg *Config) (*Sheet, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	return NewSheet(img, cfg), nil
}

// decode tries each image format we understand in turn
func decode(data []byte) (image.Image, error) {
	decoders := []func(io.Reader) (image.Image, error){
		png.Decode,
		gif.Decode,
		jpeg.Decode,
	}

	var lastErr error
	for _, decoder := range decoders {
		im, err := decoder(bytes.NewBuffer(data))
		if err == nil {
			return im, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

// Image returns the underlying sheet image.
func (s *Sheet) Image() image.Image {
	return s.img
}

// Config returns the frame grid settings for this sheet.
func (s *Sheet) Config() *Config {
	return s.cfg
}

// Cols returns how many whole frames fit across the sheet.
func (s *Sheet) Cols() int {
	bnds := s.img.Bounds()
	return (bnds.Max.X - bnds.Min.X) / int(s.cfg.FrameWidth)
}

// Rows returns how many whole frames fit down the sheet.
func (s *Sheet) Rows() int {
	bnds := s.img.Bounds()
	return (bnds.Max.Y - bnds.Min.Y) / int(s.cfg.FrameHeight)
}

// Grid returns the rectangle of each whole frame in the sheet, row-major
// from the top left. Remainder strips aren't included.
func (s *Sheet) Grid() []image.Rectangle {
	fw := int(s.cfg.FrameWidth)
	fh := int(s.cfg.FrameHeight)
	bnds := s.img.Bounds()

	grid := []image.Rectangle{}
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			x := bnds.Min.X + col*fw
			y := bnds.Min.Y + row*fh
			grid = append(grid, image.Rect(x, y, x+fw, y+fh))
		}
	}
	return grid
}

// Frame copies out the frame at (col, row).
func (s *Sheet) Frame(col, row int) (*image.RGBA, error) {
	if col < 0 || col >= s.Cols() || row < 0 || row >= s.Rows() {
		return nil, fmt.Errorf("frame (%d,%d) is out of bounds for this sheet", col, row)
	}

	fw := int(s.cfg.FrameWidth)
	fh := int(s.cfg.FrameHeight)
	bnds := s.img.Bounds()

	out := image.NewRGBA(image.Rect(0, 0, fw, fh))
	draw.Draw(
		out,
		out.Bounds(),
		s.img,
		image.Pt(bnds.Min.X+col*fw, bnds.Min.Y+row*fh),
		draw.Src,
	)
	return out, nil
}

// SavePng to disk
func SavePng(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}
