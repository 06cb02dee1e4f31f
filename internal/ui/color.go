package ui

import (
	"image/color"
	"strconv"
	"strings"
)

// parseHex reads "#rrggbb". Anything else yields opaque grey.
func parseHex(s string) color.Color {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if len(s) != 6 || err != nil {
		return color.Gray{Y: 128}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
