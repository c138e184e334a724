package tilepack

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"
)

// OpenImage decodes the image file at the given path.
func OpenImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	im, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", fname, ErrParse, err)
	}
	return im, nil
}

// paletted returns `in` as a paletted image, or an error if the image
// has no palette.
func paletted(in image.Image) (*image.Paletted, error) {
	pm, ok := in.(*image.Paletted)
	if !ok {
		return nil, fmt.Errorf("%w: image is not paletted", ErrParse)
	}
	return pm, nil
}

// RGB565 packs a color into 5 bits red, 6 green & 5 blue.
func RGB565(c color.Color) uint16 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint16(n.R&0xf8)<<8 | uint16(n.G&0xfc)<<3 | uint16(n.B>>3)
}

// Palette565 returns the palette of `in` as RGB565 values, in palette order.
func Palette565(in image.Image) ([]uint16, error) {
	pm, err := paletted(in)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, len(pm.Palette))
	for i, c := range pm.Palette {
		out[i] = RGB565(c)
	}
	return out, nil
}

// WritePalette prints one `0xLLHH,` literal per color, low byte first so
// the table can be copied straight into a little endian byte array.
func WritePalette(w io.Writer, colors []uint16) error {
	buf := bufio.NewWriter(w)
	for _, c := range colors {
		fmt.Fprintf(buf, "0x%02X%02X,\n", c&0xff, c>>8)
	}
	return buf.Flush()
}
