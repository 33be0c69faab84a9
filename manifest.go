package sprite

import (
	"fmt"
	"io/ioutil"

	yaml "github.com/go-yaml/yaml"
)

// Manifest is a realignment job written out as yaml: the settings we'd
// otherwise pass on the command line, kept alongside the sheet they correct.
type Manifest struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// in pixels
	FrameWidth  uint `yaml:"frame_width"`
	FrameHeight uint `yaml:"frame_height"`

	// positive shifts frame content down
	YOffset int `yaml:"y_offset"`
}

// LoadManifest reads a yaml job manifest from disk.
// Output defaults to the input path + ".realigned.png" if unset.
func LoadManifest(fpath string) (*Manifest, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	err = yaml.Unmarshal(data, m)
	if err != nil {
		return nil, err
	}

	if m.Input == "" {
		return nil, fmt.Errorf("manifest %s sets no input", fpath)
	}
	if m.Output == "" {
		m.Output = m.Input + ".realigned.png"
	}

	return m, nil
}

// WriteFile saves the manifest as yaml.
func (m *Manifest) WriteFile(fpath string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

// Config returns the frame grid settings for this job, falling back to
// defaults for dimensions left unset.
func (m *Manifest) Config() *Config {
	return (&Config{FrameWidth: m.FrameWidth, FrameHeight: m.FrameHeight}).sane()
}
