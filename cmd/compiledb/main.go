package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/voidshard/tilepack"
	"github.com/voidshard/tilepack/internal/cli"
)

const desc = `Regenerates compile_commands.json from a project's .ccls flag listing.

Only include paths, defines, the language standard & -Wall are kept, and a
single entry is written for the project's main source file. An existing
database is moved to the backup path once, before it is first overwritten.
Relative paths are resolved against --root.`

type compiledb struct {
	cli.Globals

	Root     string `default:"." help:"project root"`
	Source   string `help:"source file the entry describes (default: src/main.cpp)"`
	CCLS     string `name:"ccls" help:"flag listing to read (default: .ccls)"`
	Output   string `short:"o" help:"database to write (default: compile_commands.json)"`
	Backup   string `help:"where to move an existing database (default: compile_commands.json.bak)"`
	Compiler string `help:"compiler named in the command (default: g++)"`
}

func (c *compiledb) Run(env *cli.Env) error {
	cfg := tilepack.DefaultCompileDBConfig(c.Root)
	override(&cfg.Source, c.Source)
	override(&cfg.CCLS, c.CCLS)
	override(&cfg.Output, c.Output)
	override(&cfg.Backup, c.Backup)
	override(&cfg.Compiler, c.Compiler)
	env.Log.Debug("config", "root", cfg.Root, "ccls", cfg.CCLS, "output", cfg.Output)

	entry, err := tilepack.WriteCompileDB(cfg)
	if err != nil {
		return err
	}

	env.Log.Info("wrote compile database", "file", entry.File, "command", entry.Command)
	return nil
}

// override sets *dst to v, unless v is unset.
func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func main() {
	os.Exit(cli.Run(
		&compiledb{},
		os.Args[1:],
		os.Stdout,
		os.Stderr,
		kong.Name("compiledb"),
		kong.Description(desc),
	))
}
