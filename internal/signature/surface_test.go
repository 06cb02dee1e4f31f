package signature

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func inkAt(s *Surface, x, y int) bool {
	_, _, _, a := s.Image().At(x, y).RGBA()
	return a > 0
}

func TestSurfaceStrokeAndErase(t *testing.T) {
	s := NewSurface(100, 50)
	changes := 0
	s.OnChange = func() { changes++ }

	s.BeginStroke(Point{10, 25})
	s.StrokeTo(Point{90, 25})
	require.True(t, inkAt(s, 50, 25))
	require.Equal(t, 1, changes)

	s.Erase()
	require.False(t, inkAt(s, 50, 25))
	require.Equal(t, 2, changes)
}

func TestSurfaceResizeKeepsSnapshot(t *testing.T) {
	s := NewSurface(100, 50)
	s.BeginStroke(Point{10, 10})
	s.StrokeTo(Point{40, 10})

	require.NoError(t, s.Resize(200, 80))
	w, h := s.Size()
	require.Equal(t, 200, w)
	require.Equal(t, 80, h)
	require.True(t, inkAt(s, 25, 10))
	require.False(t, inkAt(s, 150, 70))
}

func TestSurfaceResizeRejectsEmpty(t *testing.T) {
	s := NewSurface(10, 10)
	require.Error(t, s.Resize(0, 10))
}

func TestSurfaceEncodePNG(t *testing.T) {
	s := NewSurface(30, 20)
	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 30, img.Bounds().Dx())
}
