package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/voidshard/tilepack"
	"github.com/voidshard/tilepack/internal/cli"
)

const desc = `Prints the tile ids of a Tiled (.tmx) map layer as C array rows.

Each map row is printed as '{id,id,...},'. Tiled ids are 1-based (0 is the
empty tile) so by default every id is shifted down by one. Given a hex mask
the shifted id is ANDed with it, which strips Tiled's flip flags. With --flags
only the top 4 bits of the raw id (the flags) are printed instead.`

type tmx2c struct {
	cli.Globals

	Input string `arg:"" name:"tmx-file" help:"input .tmx map"`
	Every int    `arg:"" name:"n" help:"print a blank line after every n'th row (0: never)"`
	Mask  string `arg:"" optional:"" name:"mask-hex" help:"hex mask applied to each id after the offset, eg. 0x0FFF"`

	Flags bool   `help:"print the flag bits (id >> 28) rather than the id"`
	Layer string `help:"name of the layer to print (default: the first layer)"`
}

func (c *tmx2c) Run(env *cli.Env) error {
	t, err := tilepack.SelectTransform(c.Mask, c.Flags)
	if err != nil {
		return err
	}

	m, err := tilepack.Open(c.Input)
	if err != nil {
		return err
	}
	env.Log.Debug("read map", "file", c.Input, "width", m.Width, "height", m.Height, "layers", len(m.TileLayers))

	g, err := tilepack.Extract(m, c.Layer, t)
	if err != nil {
		return err
	}
	env.Log.Debug("extracted", "transform", t, "rows", len(g.Rows))

	return g.Write(env.Stdout, c.Every)
}

func main() {
	os.Exit(cli.Run(
		&tmx2c{},
		os.Args[1:],
		os.Stdout,
		os.Stderr,
		kong.Name("tmx2c"),
		kong.Description(desc),
	))
}
