/* this file is a reduced set of structs for reading TMX files.

The struct layout follows github.com/bcvery1/tilepix (all credit to authors).

The conversion tools only ever read a map, so there is no encoder here, and
only the parts of TMX that end up in the generated tables are parsed.
*/
package tilepack

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// encodingCSV is the only tile data encoding we read.
const encodingCSV = "csv"

// Map is a TMX file structure representing the map as a whole.
// We support only a subset of TMX: tile layers with CSV encoded,
// uncompressed data. Tilesets, properties & object layers are skipped.
type Map struct {
	XMLName    xml.Name     `xml:"map"`
	Width      int          `xml:"width,attr"`  // in tiles
	Height     int          `xml:"height,attr"` // in tiles
	TileLayers []*TileLayer `xml:"layer"`
}

// TileLayer is a TMX file structure holding one layer of tile ids.
type TileLayer struct {
	Name string `xml:"name,attr"`
	Data *Data  `xml:"data"`
}

// Data is a TMX file structure holding data.
type Data struct {
	Encoding    string `xml:"encoding,attr"`
	Compression string `xml:"compression,attr"`
	RawData     []byte `xml:",innerxml"`
}

// decodeCSV reads csv encoded tile data.
// Tokens may carry surrounding whitespace (Tiled writes one row per line)
// but anything else that isn't a base 10 uint32 is an error.
func (d *Data) decodeCSV() ([]uint32, error) {
	if d.Encoding != "" && d.Encoding != encodingCSV {
		return nil, fmt.Errorf("%w: unsupported tile data encoding %q", ErrParse, d.Encoding)
	}
	if d.Compression != "" {
		return nil, fmt.Errorf("%w: unsupported tile data compression %q", ErrParse, d.Compression)
	}

	raw := strings.TrimSpace(string(d.RawData))
	if raw == "" {
		return []uint32{}, nil
	}

	str := strings.Split(raw, ",")

	gids := make([]uint32, len(str))
	for i, s := range str {
		v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: tile %d: %v", ErrParse, i, err)
		}
		gids[i] = uint32(v)
	}
	return gids, nil
}
