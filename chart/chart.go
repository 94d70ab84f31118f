// Package chart renders image histograms as bar charts.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"github.com/ArnaudCalmettes/stretcher/imp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Size of the rendered charts.
var (
	Width  = 8 * vg.Inch
	Height = 4 * vg.Inch
)

// Colors used for the histograms of each kind of channel.
var (
	Gray  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	Red   = color.RGBA{R: 220, A: 255}
	Green = color.RGBA{G: 160, A: 255}
	Blue  = color.RGBA{B: 220, A: 255}
)

// Histogram builds a bar chart with one bar per sample value.
func Histogram(title string, h imp.Histogram, c color.Color) (*plot.Plot, error) {
	values := make(plotter.Values, len(h))
	for v, n := range h {
		values[v] = float64(n)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(2))
	if err != nil {
		return nil, fmt.Errorf("couldn't create bar chart: %w", err)
	}
	bars.Color = c
	bars.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Pixel value"
	p.Y.Label.Text = "Frequency"
	p.Add(bars, plotter.NewGrid())
	p.X.Min, p.X.Max = 0, 255
	p.Y.Min = 0
	return p, nil
}

// WritePNG renders p as a PNG image.
func WritePNG(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders p to a file whose format depends on its extension.
func Save(filename string, p *plot.Plot) error {
	return p.Save(Width, Height, filename)
}
