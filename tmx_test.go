package tilepack

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

const csvdata = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.5" orientation="orthogonal" width="4" height="3" tilewidth="16" tileheight="16">
 <properties>
  <property name="level" type="int" value="2"/>
 </properties>
 <tileset firstgid="1" source="tiles.tsx"/>
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
1,2,3,4,
5,6,7,8,
9,10,2147483659,0
</data>
 </layer>
 <layer id="2" name="flags" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
0,0,0,1
</data>
 </layer>
</map>
`

func TestDecode(t *testing.T) {
	m, err := Decode(bytes.NewBufferString(csvdata))

	require.Nil(t, err)
	assert.Equal(t, 4, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.Equal(t, 2, len(m.TileLayers))
	assert.Equal(t, "ground", m.TileLayers[0].Name)
	assert.Equal(t, "csv", m.TileLayers[0].Data.Encoding)

	cells, err := m.Cells(m.TileLayers[0])
	require.Nil(t, err)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 2147483659, 0}, cells)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"not xml":       `this is not a map`,
		"no width":      `<map height="1"><layer><data>1</data></layer></map>`,
		"zero height":   `<map width="1" height="0"><layer><data>1</data></layer></map>`,
		"bad width":     `<map width="x" height="1"><layer><data>1</data></layer></map>`,
		"no layer":      `<map width="1" height="1"></map>`,
		"no data":       `<map width="1" height="1"><layer name="a"></layer></map>`,
		"truncated xml": `<map width="1" height="1"><layer><data>1`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := Decode(bytes.NewBufferString(doc))
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrParse), "got %v", err)
		})
	}
}

func TestDecodeCSV(t *testing.T) {
	d := &Data{Encoding: "csv", RawData: []byte("\n 1, 2 ,3,\n4\n")}

	gids, err := d.decodeCSV()

	assert.Nil(t, err)
	assert.Equal(t, []uint32{1, 2, 3, 4}, gids)
}

func TestDecodeCSVErrors(t *testing.T) {
	cases := map[string]*Data{
		"non integer":  {RawData: []byte("1,x,3")},
		"negative":     {RawData: []byte("1,-2,3")},
		"empty token":  {RawData: []byte("1,,3")},
		"too large":    {RawData: []byte("4294967296")},
		"base64":       {Encoding: "base64", RawData: []byte("AQAAAA==")},
		"compressed":   {Encoding: "csv", Compression: "zlib", RawData: []byte("1")},
		"trailing sep": {RawData: []byte("1,2,")},
	}

	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := d.decodeCSV()
			assert.True(t, errors.Is(err, ErrParse), "got %v", err)
		})
	}
}

func TestLayer(t *testing.T) {
	m, err := Decode(bytes.NewBufferString(csvdata))
	require.Nil(t, err)

	l, err := m.Layer("")
	assert.Nil(t, err)
	assert.Equal(t, "ground", l.Name)

	l, err = m.Layer("flags")
	assert.Nil(t, err)
	assert.Equal(t, "flags", l.Name)

	_, err = m.Layer("nope")
	assert.True(t, errors.Is(err, ErrParse))
}

func TestCellsCountMismatch(t *testing.T) {
	for _, data := range []string{"1,2,3", "1,2,3,4,5", ""} {
		m, err := Decode(bytes.NewBufferString(
			`<map width="2" height="2"><layer><data encoding="csv">` + data + `</data></layer></map>`,
		))
		require.Nil(t, err)

		_, err = m.Cells(m.TileLayers[0])
		assert.True(t, errors.Is(err, ErrBounds), "%q: got %v", data, err)
	}
}

func TestCellsHugeDimensions(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("dimensions don't fit an int")
	}
	// 2^32 * 2^32 wraps to 0 in an int
	for _, data := range []string{"", "1"} {
		m, err := Decode(bytes.NewBufferString(
			`<map width="4294967296" height="4294967296"><layer><data encoding="csv">` + data + `</data></layer></map>`,
		))
		require.Nil(t, err)

		_, err = m.Cells(m.TileLayers[0])
		assert.True(t, errors.Is(err, ErrBounds), "%q: got %v", data, err)
	}
}

func TestOpen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "map.tmx")
	require.Nil(t, os.WriteFile(fname, []byte(csvdata), 0644))

	m, err := Open(fname)
	assert.Nil(t, err)
	assert.Equal(t, 4, m.Width)

	_, err = Open(filepath.Join(t.TempDir(), "missing.tmx"))
	assert.True(t, os.IsNotExist(err))
}
