/* file adds helper functions to our tmx map struct.
 */
package tilepack

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Decode an input TMX map XML.
// The map must declare a positive width & height and hold at least one
// tile layer with a data element.
func Decode(r io.Reader) (*Map, error) {
	m := &Map{}
	if err := xml.NewDecoder(r).Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("%w: map width & height must be positive, got %dx%d", ErrParse, m.Width, m.Height)
	}

	if len(m.TileLayers) == 0 {
		return nil, fmt.Errorf("%w: map has no tile layer", ErrParse)
	}

	for _, tl := range m.TileLayers {
		if tl.Data == nil {
			return nil, fmt.Errorf("%w: layer %q has no data", ErrParse, tl.Name)
		}
	}

	return m, nil
}

// Open reads the TMX map at the given path.
func Open(fname string) (*Map, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return m, nil
}

// Layer returns the tile layer with the given name.
// An empty name returns the first layer in the file.
func (m *Map) Layer(name string) (*TileLayer, error) {
	if name == "" {
		return m.TileLayers[0], nil
	}
	for _, tl := range m.TileLayers {
		if tl.Name == name {
			return tl, nil
		}
	}
	return nil, fmt.Errorf("%w: no tile layer named %q", ErrParse, name)
}

// Cells returns the raw tile ids of the layer, row major.
// It is an error for the layer to hold anything other than width*height ids.
func (m *Map) Cells(l *TileLayer) ([]uint32, error) {
	cells, err := l.Data.decodeCSV()
	if err != nil {
		return nil, err
	}

	// compared by division, width*height can overflow
	if m.Height <= 0 || len(cells)%m.Height != 0 || len(cells)/m.Height != m.Width {
		return nil, fmt.Errorf(
			"%w: layer %q holds %d tiles, map is %dx%d",
			ErrBounds, l.Name, len(cells), m.Width, m.Height,
		)
	}

	return cells, nil
}
