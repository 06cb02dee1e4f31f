package export

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"SignDesk/internal/viewmodel"
)

// Series colours of the hourly chart.
const (
	EmailsColor = "#667eea"
	SignedColor = "#10b981"
	axisColor   = "#d1d5db"
)

const chartPad = 8.0

// HourlyChart draws the hourly activity as grouped bars, emails then
// signatures for each hour.
func HourlyChart(h viewmodel.Hourly, width, height int) (image.Image, error) {
	dc, err := drawHourly(h, width, height)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// HourlyChartPNG writes the chart as PNG.
func HourlyChartPNG(w io.Writer, h viewmodel.Hourly, width, height int) error {
	dc, err := drawHourly(h, width, height)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func drawHourly(h viewmodel.Hourly, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid chart size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	plotW := float64(width) - 2*chartPad
	plotH := float64(height) - 2*chartPad
	base := float64(height) - chartPad

	dc.SetHexColor(axisColor)
	dc.SetLineWidth(1)
	dc.MoveTo(chartPad, base)
	dc.LineTo(chartPad+plotW, base)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("draw axis: %w", err)
	}

	buckets := len(h.Labels)
	if buckets == 0 || h.Max == 0 {
		return dc, nil
	}
	slot := plotW / float64(buckets)
	bar := slot * 0.35

	draw := func(series []int, offset float64, color string) error {
		dc.SetHexColor(color)
		for i, v := range series {
			if v <= 0 {
				continue
			}
			bh := plotH * float64(v) / float64(h.Max)
			dc.DrawRectangle(chartPad+float64(i)*slot+offset, base-bh, bar, bh)
		}
		return dc.Fill()
	}
	if err := draw(h.Emails, slot*0.12, EmailsColor); err != nil {
		return nil, fmt.Errorf("draw emails: %w", err)
	}
	if err := draw(h.Signed, slot*0.12+bar, SignedColor); err != nil {
		return nil, fmt.Errorf("draw signed: %w", err)
	}
	return dc, nil
}
