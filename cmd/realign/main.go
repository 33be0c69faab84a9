package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/voidshard/sprite"
)

const desc = `Fixes vertical alignment across spritesheet frames.

The sheet is cut into a grid of fixed size frames, each frame's content is shifted
down by --y-offset pixels (space it vacates is left transparent, content pushed past
the frame edge is clipped) and the frames are glued back together into a sheet of
the same overall size.`

var cli struct {
	Input  string `short:"i" help:"input spritesheet"`
	Output string `short:"o" help:"where to write the output image. Defaults to input + .realigned.png"`

	// a yaml manifest replaces the input/output/frame/offset flags entirely
	Manifest string `short:"m" help:"read job settings from a yaml manifest instead of flags"`

	// how wide/high each frame is in pixels
	FrameWidth  int `default:"146" help:"width of each frame in px"`
	FrameHeight int `default:"64" help:"height of each frame in px"`

	YOffset int `default:"5" help:"pixels to shift each frame's content down (negative shifts up)"`

	Fit bool `help:"resize sheet to the nearest whole number of frames before realigning"`

	// don't write anything
	DryRun bool `help:"print out what you're planning"`

	Catalog   string `help:"catalog database file. Defaults to ~/.sprite/catalog.sqlite"`
	NoCatalog bool   `help:"don't record this run in the catalog"`
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("realign"),
		kong.Description(desc),
	)

	job := &sprite.Manifest{
		Input:       cli.Input,
		Output:      cli.Output,
		FrameWidth:  uint(cli.FrameWidth),
		FrameHeight: uint(cli.FrameHeight),
		YOffset:     cli.YOffset,
	}
	if cli.Manifest != "" {
		var err error
		job, err = sprite.LoadManifest(cli.Manifest)
		if err != nil {
			panic(err)
		}
	}
	if job.Output == "" {
		job.Output = job.Input + ".realigned.png"
	}

	sheet, err := sprite.OpenSheet(job.Input, job.Config())
	if err != nil {
		panic(err)
	}

	if cli.Fit {
		sheet = sheet.Fit()
	}

	bnds := sheet.Image().Bounds()

	if cli.DryRun {
		fmt.Printf(
			"read %dx%d sheet from %s: %d cols x %d rows of %dx%d frames, would shift %dpx\n",
			bnds.Dx(), bnds.Dy(), job.Input, sheet.Cols(), sheet.Rows(),
			job.Config().FrameWidth, job.Config().FrameHeight, job.YOffset,
		)
		fmt.Println("dry-run detected: doing nothing")
		return
	}

	out := sheet.Realign(job.YOffset)

	err = sprite.SavePng(job.Output, out)
	if err != nil {
		panic(err)
	}

	if !cli.NoCatalog {
		record(job, bnds.Dx(), bnds.Dy())
	}

	fmt.Printf("realigned spritesheet saved to %s\n", job.Output)
}

// record this run in the catalog
func record(job *sprite.Manifest, sheetWidth, sheetHeight int) {
	fname := cli.Catalog
	if fname == "" {
		var err error
		fname, err = sprite.DefaultCatalogPath()
		if err != nil {
			panic(err)
		}
	}

	cat, err := sprite.OpenCatalog(fname)
	if err != nil {
		panic(err)
	}
	defer cat.Close()

	cfg := job.Config()
	err = cat.Record(&sprite.Run{
		Input:       job.Input,
		Output:      job.Output,
		FrameWidth:  int(cfg.FrameWidth),
		FrameHeight: int(cfg.FrameHeight),
		YOffset:     job.YOffset,
		SheetWidth:  sheetWidth,
		SheetHeight: sheetHeight,
	})
	if err != nil {
		panic(err)
	}
}
