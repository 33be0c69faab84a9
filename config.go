package sprite

// Config includes the frame grid settings for a spritesheet
type Config struct {
	// in pixels
	FrameWidth  uint
	FrameHeight uint
}

// DefaultConfig returns a sheet config with default settings.
func DefaultConfig() *Config {
	return &Config{
		FrameWidth:  146,
		FrameHeight: 64,
	}
}

// sane returns a copy of the config with defaults filled in for unset
// (zero) frame dimensions. Keeps the grid maths from dividing by zero.
func (c *Config) sane() *Config {
	out := DefaultConfig()
	if c == nil {
		return out
	}
	if c.FrameWidth > 0 {
		out.FrameWidth = c.FrameWidth
	}
	if c.FrameHeight > 0 {
		out.FrameHeight = c.FrameHeight
	}
	return out
}
