package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/voidshard/sprite"
)

const desc = `Lists past realignment runs recorded in the catalog.`

var cli struct {
	Catalog string `help:"catalog database file. Defaults to ~/.sprite/catalog.sqlite"`

	Input string `short:"i" help:"only show runs for this input sheet"`
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("history"),
		kong.Description(desc),
	)

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

	var runs []*sprite.Run
	if cli.Input != "" {
		runs, err = cat.Runs(cli.Input)
	} else {
		runs, err = cat.AllRuns()
	}
	if err != nil {
		panic(err)
	}

	for _, r := range runs {
		fmt.Printf(
			"%s %s -> %s: %dx%d frames shifted %dpx (sheet %dx%d)\n",
			time.Unix(r.Created, 0).Format("2006-01-02 15:04:05"),
			r.Input, r.Output,
			r.FrameWidth, r.FrameHeight, r.YOffset,
			r.SheetWidth, r.SheetHeight,
		)
	}
}
