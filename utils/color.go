package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexToRGBA converts a color expressed as #rgb, #rrggbb or #rrggbbaa to an NRGBA color.
func HexToRGBA(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
