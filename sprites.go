package tilepack

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/nfnt/resize"
)

// Sprites is a sprite sheet cut into equally sized tiles.
// Each tile holds Width*Height palette indices, row major.
type Sprites struct {
	Width  int
	Height int
	Tiles  [][]uint8
}

// SliceSprites cuts a paletted image into tiles of w x h pixels, visiting
// tiles left to right, top to bottom.
//
// If scale > 1 the image is first enlarged by that factor (nearest neighbour)
// and the tiles are cut at w*scale x h*scale.
func SliceSprites(in image.Image, w, h, scale int) (*Sprites, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: sprite size must be positive, got %dx%d", ErrUsage, w, h)
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: scale must be >= 1, got %d", ErrUsage, scale)
	}

	pm, err := paletted(in)
	if err != nil {
		return nil, err
	}
	if scale > 1 {
		pm = upscale(pm, scale)
		w *= scale
		h *= scale
	}

	bnds := pm.Bounds()
	if bnds.Dx()%w != 0 || bnds.Dy()%h != 0 {
		return nil, fmt.Errorf(
			"%w: image is %dx%d, not a multiple of the %dx%d sprite size",
			ErrBounds, bnds.Dx(), bnds.Dy(), w, h,
		)
	}

	tilesWide := bnds.Dx() / w
	tilesHigh := bnds.Dy() / h

	s := &Sprites{Width: w, Height: h, Tiles: make([][]uint8, 0, tilesWide*tilesHigh)}
	for ty := 0; ty < tilesHigh; ty++ {
		for tx := 0; tx < tilesWide; tx++ {
			t := make([]uint8, 0, w*h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					t = append(t, pm.ColorIndexAt(bnds.Min.X+tx*w+x, bnds.Min.Y+ty*h+y))
				}
			}
			s.Tiles = append(s.Tiles, t)
		}
	}

	return s, nil
}

// upscale enlarges `in` by `scale`, keeping its palette.
// The palette indices are resized as a gray plane so that every pixel keeps
// its exact index, even when the palette repeats a color.
func upscale(in *image.Paletted, scale int) *image.Paletted {
	bnds := in.Bounds()
	plane := image.NewGray(image.Rect(0, 0, bnds.Dx(), bnds.Dy()))
	for y := bnds.Min.Y; y < bnds.Max.Y; y++ {
		for x := bnds.Min.X; x < bnds.Max.X; x++ {
			plane.Pix[plane.PixOffset(x-bnds.Min.X, y-bnds.Min.Y)] = in.ColorIndexAt(x, y)
		}
	}

	big := resize.Resize(
		uint(bnds.Dx()*scale),
		uint(bnds.Dy()*scale),
		plane,
		resize.NearestNeighbor,
	)

	bb := big.Bounds()
	out := image.NewPaletted(image.Rect(0, 0, bb.Dx(), bb.Dy()), in.Palette)
	for y := bb.Min.Y; y < bb.Max.Y; y++ {
		for x := bb.Min.X; x < bb.Max.X; x++ {
			g := color.GrayModel.Convert(big.At(x, y)).(color.Gray)
			out.SetColorIndex(x-bb.Min.X, y-bb.Min.Y, g.Y)
		}
	}
	return out
}

// WriteSprites prints each tile as a bracketed byte array, one line per
// pixel row:
//
//	{ // 0
//	0x00,0x01,
//	0x01,0x00,
//	},
func WriteSprites(w io.Writer, s *Sprites) error {
	buf := bufio.NewWriter(w)
	for ix, t := range s.Tiles {
		fmt.Fprintf(buf, "{ // %d\n", ix)
		for y := 0; y < s.Height; y++ {
			for _, p := range t[y*s.Width : (y+1)*s.Width] {
				fmt.Fprintf(buf, "0x%02X,", p)
			}
			buf.WriteString("\n")
		}
		buf.WriteString("},\n")
	}
	return buf.Flush()
}
