package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/voidshard/tilepack"
	"github.com/voidshard/tilepack/internal/cli"
)

const desc = `Cuts a paletted png sprite sheet into sprites & prints each as a byte array
of palette indices.

Sprites are read left to right, top to bottom. The image must be an exact
multiple of the sprite size.`

type png2sprites struct {
	cli.Globals

	Width  int    `arg:"" help:"width of each sprite in px"`
	Height int    `arg:"" help:"height of each sprite in px"`
	Input  string `arg:"" name:"png-file" help:"input paletted png"`

	Scale int `default:"1" help:"enlarge the sheet by this factor (nearest neighbour) before cutting"`
}

func (c *png2sprites) Run(env *cli.Env) error {
	im, err := tilepack.OpenImage(c.Input)
	if err != nil {
		return err
	}
	env.Log.Debug("read image", "file", c.Input, "size", im.Bounds().Size())

	s, err := tilepack.SliceSprites(im, c.Width, c.Height, c.Scale)
	if err != nil {
		return err
	}
	env.Log.Debug("sliced", "sprites", len(s.Tiles), "width", s.Width, "height", s.Height)

	return tilepack.WriteSprites(env.Stdout, s)
}

func main() {
	os.Exit(cli.Run(
		&png2sprites{},
		os.Args[1:],
		os.Stdout,
		os.Stderr,
		kong.Name("png2sprites"),
		kong.Description(desc),
	))
}
