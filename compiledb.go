package tilepack

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// keepFlags are the flag prefixes a language server needs from a build;
// everything else (optimisation, target specific flags) is dropped.
var keepFlags = []string{"-I", "-D", "-std", "-Wall"}

// CompileCommand is one entry of a compile_commands.json database.
type CompileCommand struct {
	Directory string `json:"directory"`
	File      string `json:"file"`
	Command   string `json:"command"`
}

// keepFlag reports if `flag` should make it into the compile database.
func keepFlag(flag string) bool {
	for _, p := range keepFlags {
		if strings.HasPrefix(flag, p) {
			return true
		}
	}
	return false
}

func filterFlags(fields []string) []string {
	kept := []string{}
	for _, f := range fields {
		if keepFlag(f) {
			kept = append(kept, f)
		}
	}
	return kept
}

// ReadFlags reads a .ccls file and returns the flags that apply to C++
// sources: common flags first, then those listed under %cpp.
// %c lines & other % directives are ignored.
func ReadFlags(r io.Reader) ([]string, error) {
	common := []string{}
	cpp := []string{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "%cpp"):
			cpp = append(cpp, filterFlags(strings.Fields(line)[1:])...)
		case strings.HasPrefix(line, "%"):
			// %c and friends
			continue
		default:
			common = append(common, filterFlags(strings.Fields(line))...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return append(common, cpp...), nil
}

// NewCompileCommand builds the single database entry for cfg.Source.
func NewCompileCommand(cfg *CompileDBConfig, flags []string) CompileCommand {
	parts := append([]string{cfg.Compiler}, flags...)
	parts = append(parts, cfg.Source)
	return CompileCommand{
		Directory: cfg.Root,
		File:      cfg.Source,
		Command:   strings.Join(parts, " "),
	}
}

// EncodeCompileDB writes the entries as a JSON array, indented by two spaces.
func EncodeCompileDB(w io.Writer, entries []CompileCommand) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteCompileDB regenerates the compile database described by cfg and
// returns the entry written.
// If cfg.Output already exists & there is no backup yet, the existing
// database is moved to cfg.Backup first.
func WriteCompileDB(cfg *CompileDBConfig) (*CompileCommand, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(cfg.CCLS)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	flags, err := ReadFlags(f)
	if err != nil {
		return nil, err
	}

	if fileExists(cfg.Output) && !fileExists(cfg.Backup) {
		if err := os.Rename(cfg.Output, cfg.Backup); err != nil {
			return nil, err
		}
	}

	entry := NewCompileCommand(cfg, flags)

	buff := bytes.Buffer{}
	if err := EncodeCompileDB(&buff, []CompileCommand{entry}); err != nil {
		return nil, err
	}
	if err := os.WriteFile(cfg.Output, buff.Bytes(), 0644); err != nil {
		return nil, err
	}

	return &entry, nil
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
