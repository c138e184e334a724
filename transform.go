package tilepack

import (
	"fmt"
	"strconv"
	"strings"
)

// flagShift is where Tiled keeps its flip/rotate flags in a gid.
const flagShift = 28

// Transform maps a raw tile id (as read from the TMX) to the value we emit.
type Transform interface {
	Apply(gid uint32) int64
	String() string
}

type offset struct{}

// Offset shifts 1-based Tiled ids to 0-based, so an empty tile becomes -1.
func Offset() Transform { return offset{} }

func (offset) Apply(gid uint32) int64 { return int64(gid) - 1 }
func (offset) String() string         { return "offset" }

type masked struct {
	mask int64
}

// Masked applies Offset, then ANDs with mask to strip flag bits.
// The subtraction is done in signed space, so an empty tile comes out
// as the mask itself.
func Masked(mask int64) Transform { return masked{mask: mask} }

func (t masked) Apply(gid uint32) int64 { return (int64(gid) - 1) & t.mask }
func (t masked) String() string         { return fmt.Sprintf("masked(%#x)", t.mask) }

type flagBits struct{}

// FlagBits returns the top 4 bits of the raw id. No offset is applied.
func FlagBits() Transform { return flagBits{} }

func (flagBits) Apply(gid uint32) int64 { return int64(gid >> flagShift) }
func (flagBits) String() string         { return "flagbits" }

// ParseMask reads a hex mask as given on the command line, with or
// without a 0x prefix (eg. "0x0FFF", "fff"). Masks may be up to 63 bits wide.
func ParseMask(s string) (int64, error) {
	v := strings.TrimSpace(s)
	if len(v) > 1 && v[0] == '0' && (v[1] == 'x' || v[1] == 'X') {
		v = v[2:]
	}
	m, err := strconv.ParseUint(v, 16, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: bad mask %q: %v", ErrUsage, s, err)
	}
	return int64(m), nil
}

// SelectTransform picks the transform for the given cli options.
// Flag extraction can't be combined with a mask.
func SelectTransform(mask string, flags bool) (Transform, error) {
	switch {
	case flags && mask != "":
		return nil, fmt.Errorf("%w: a mask can't be combined with flag extraction", ErrUsage)
	case flags:
		return FlagBits(), nil
	case mask != "":
		m, err := ParseMask(mask)
		if err != nil {
			return nil, err
		}
		return Masked(m), nil
	}
	return Offset(), nil
}
