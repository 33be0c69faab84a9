package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/voidshard/sprite"
)

const desc = `Draws the frame grid over a spritesheet for eyeballing frame alignment.`

var cli struct {
	Input  string `short:"i" help:"input spritesheet"`
	Output string `short:"o" help:"where to write the output image. Defaults to input + .grid.png"`

	// how wide/high each frame is in pixels
	FrameWidth  int `default:"146" help:"width of each frame in px"`
	FrameHeight int `default:"64" help:"height of each frame in px"`
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("preview"),
		kong.Description(desc),
	)

	if cli.Output == "" {
		cli.Output = cli.Input + ".grid.png"
	}

	sheet, err := sprite.OpenSheet(cli.Input, &sprite.Config{
		FrameWidth:  uint(cli.FrameWidth),
		FrameHeight: uint(cli.FrameHeight),
	})
	if err != nil {
		panic(err)
	}

	grid := sprite.RenderGrid(sheet.Image(), sheet.Config())

	err = sprite.SavePng(cli.Output, grid)
	if err != nil {
		panic(err)
	}

	fmt.Printf("grid preview saved to %s\n", cli.Output)
}
