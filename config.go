package tilepack

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// CompileDBConfig includes settings for regenerating a compile database.
// Relative paths are resolved against Root.
type CompileDBConfig struct {
	// project directory, written as the entry's "directory"
	Root string

	// the one translation unit the database describes
	Source string

	// flag listing to read
	CCLS string

	// database to write, and where to keep the previous one
	Output string
	Backup string

	Compiler string
}

// DefaultCompileDBConfig returns the settings for a PlatformIO style
// project rooted at `root`.
func DefaultCompileDBConfig(root string) *CompileDBConfig {
	return &CompileDBConfig{
		Root:     root,
		Source:   filepath.Join("src", "main.cpp"),
		CCLS:     ".ccls",
		Output:   "compile_commands.json",
		Backup:   "compile_commands.json.bak",
		Compiler: "g++",
	}
}

// Resolve returns a copy of the config with "~" expanded and every path
// made absolute.
func (c *CompileDBConfig) Resolve() (*CompileDBConfig, error) {
	root, err := homedir.Expand(c.Root)
	if err != nil {
		return nil, err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	out := *c
	out.Root = root
	for _, p := range []*string{&out.Source, &out.CCLS, &out.Output, &out.Backup} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, err
		}
		if !filepath.IsAbs(expanded) {
			expanded = filepath.Join(root, expanded)
		}
		*p = expanded
	}
	return &out, nil
}
