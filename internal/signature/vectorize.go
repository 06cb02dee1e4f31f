package signature

import (
	"fmt"
	"strconv"
	"strings"
)

// Stroke style shared by the vector document and the raster buffer.
const (
	StrokeColor = "#000000"
	StrokeWidth = 2
)

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
  <path d="%s" stroke="%s" stroke-width="%d" stroke-linecap="round" stroke-linejoin="round" fill="none"/>
</svg>`

// PathData renders segs as SVG path commands. End segments produce nothing.
func PathData(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.Kind {
		case KindMove:
			b.WriteString("M ")
		case KindLine:
			b.WriteString("L ")
		default:
			continue
		}
		b.WriteString(formatCoord(s.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(s.Y))
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String())
}

// Vectorize builds a standalone SVG document of the given pixel size.
// It returns false when segs is empty.
func Vectorize(segs []Segment, width, height int) (string, bool) {
	if len(segs) == 0 {
		return "", false
	}
	return fmt.Sprintf(svgTemplate, width, height, width, height, PathData(segs), StrokeColor, StrokeWidth), true
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
