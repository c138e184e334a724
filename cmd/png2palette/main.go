package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/voidshard/tilepack"
	"github.com/voidshard/tilepack/internal/cli"
)

const desc = `Prints the palette of a paletted png as RGB565 literals, low byte first.`

type png2palette struct {
	cli.Globals

	Input string `arg:"" name:"png-file" help:"input paletted png"`
}

func (c *png2palette) Run(env *cli.Env) error {
	im, err := tilepack.OpenImage(c.Input)
	if err != nil {
		return err
	}

	colors, err := tilepack.Palette565(im)
	if err != nil {
		return err
	}
	env.Log.Debug("read palette", "file", c.Input, "colors", len(colors))

	return tilepack.WritePalette(env.Stdout, colors)
}

func main() {
	os.Exit(cli.Run(
		&png2palette{},
		os.Args[1:],
		os.Stdout,
		os.Stderr,
		kong.Name("png2palette"),
		kong.Description(desc),
	))
}
