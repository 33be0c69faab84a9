package sprite

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogRecordsRuns(t *testing.T) {
	dir, err := ioutil.TempDir("", "sprite")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	cat, err := OpenCatalog(filepath.Join(dir, "catalog.sqlite"))
	assert.Nil(t, err)
	defer cat.Close()

	err = cat.Record(&Run{
		Input: "a.png", Output: "a.realigned.png",
		FrameWidth: 146, FrameHeight: 64, YOffset: 5,
		SheetWidth: 292, SheetHeight: 128,
		Created: 100,
	})
	assert.Nil(t, err)

	err = cat.Record(&Run{
		Input: "b.png", Output: "b.realigned.png",
		FrameWidth: 32, FrameHeight: 32, YOffset: -2,
		SheetWidth: 64, SheetHeight: 64,
		Created: 200,
	})
	assert.Nil(t, err)

	all, err := cat.AllRuns()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(all))
	assert.Equal(t, "a.png", all[0].Input)
	assert.Equal(t, "b.png", all[1].Input)

	runs, err := cat.Runs("b.png")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(runs))
	assert.Equal(t, -2, runs[0].YOffset)
	assert.Equal(t, 64, runs[0].SheetWidth)
}

func TestCatalogStampsCreated(t *testing.T) {
	dir, err := ioutil.TempDir("", "sprite")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	cat, err := OpenCatalog(filepath.Join(dir, "catalog.sqlite"))
	assert.Nil(t, err)
	defer cat.Close()

	err = cat.Record(&Run{Input: "a.png", Output: "a.realigned.png"})
	assert.Nil(t, err)

	runs, err := cat.Runs("a.png")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(runs))
	assert.True(t, runs[0].Created > 0)
}

func TestCatalogCreatesDirs(t *testing.T) {
	dir, err := ioutil.TempDir("", "sprite")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "nested", "catalog.sqlite")
	cat, err := OpenCatalog(fname)
	assert.Nil(t, err)
	defer cat.Close()

	assert.Equal(t, fname, cat.Filename())
}
