package tilepack

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Grid is a tile layer after a Transform, ready to be written out as
// C style array rows.
type Grid struct {
	Width  int
	Height int
	Rows   [][]int64
}

// Extract applies `t` to every tile of the given layer (the first layer
// if `layer` is "").
func Extract(m *Map, layer string, t Transform) (*Grid, error) {
	l, err := m.Layer(layer)
	if err != nil {
		return nil, err
	}

	cells, err := m.Cells(l)
	if err != nil {
		return nil, err
	}

	g := &Grid{Width: m.Width, Height: m.Height, Rows: make([][]int64, m.Height)}
	for row := 0; row < m.Height; row++ {
		values := make([]int64, m.Width)
		for col := 0; col < m.Width; col++ {
			values[col] = t.Apply(cells[row*m.Width+col])
		}
		g.Rows[row] = values
	}

	return g, nil
}

// Write prints one `{a,b,c},` line per row, with a blank line after every
// `every`th row. every == 0 never adds blank lines.
func (g *Grid) Write(w io.Writer, every int) error {
	if every < 0 {
		return fmt.Errorf("%w: row group must be >= 0, got %d", ErrUsage, every)
	}

	buf := bufio.NewWriter(w)
	for row, values := range g.Rows {
		csvrow := make([]string, len(values))
		for col, v := range values {
			csvrow[col] = strconv.FormatInt(v, 10)
		}
		buf.WriteString("{" + strings.Join(csvrow, ",") + "},\n")

		if every > 0 && (row+1)%every == 0 {
			buf.WriteString("\n")
		}
	}

	return buf.Flush()
}
