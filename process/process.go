// Package process runs named image processing pipelines and gathers their
// outputs, histogram charts and statistics.
package process

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/ArnaudCalmettes/stretcher/chart"
	"github.com/ArnaudCalmettes/stretcher/imp"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Options tune the pipelines that need parameters.
type Options struct {
	Offset int          // Brighten only
	Policy imp.Overflow // Brighten only
}

// An Output is an image produced by a pipeline.
type Output struct {
	Name  string
	Image image.Image
}

// Encode writes the output as a PNG.
func (o Output) Encode(w io.Writer) error {
	return imp.Encode(w, o.Image, o.Name)
}

// A Chart is a rendered histogram.
type Chart struct {
	Name string
	PNG  []byte
}

// Result gathers everything a pipeline produced.
type Result struct {
	ID      uuid.UUID
	Kind    Kind
	Bounds  image.Rectangle
	Outputs []Output
	Charts  []Chart

	// Luma statistics before and after processing.
	Before imp.Stats
	After  imp.Stats
}

func (r *Result) filename(name string) string {
	return fmt.Sprintf("%s_%s.png", name, r.ID)
}

func (r *Result) addOutput(name string, img image.Image) {
	r.Outputs = append(r.Outputs, Output{Name: r.filename(name), Image: img})
}

// channel is a single plane awaiting its histogram chart.
type channel struct {
	name  string
	title string
	color color.Color
	img   *image.Gray
}

// Run applies the pipeline of given kind to img.
func Run(ctx context.Context, kind Kind, img image.Image, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		ID:     uuid.New(),
		Kind:   kind,
		Bounds: img.Bounds(),
	}
	gray := imp.ToGray(img)
	res.Before = imp.ComputeStats(gray)
	res.After = res.Before

	var charts []channel
	switch kind {
	case Gray:
		res.addOutput("gray", gray)
		charts = append(charts, channel{"histogram", "Grayscale", chart.Gray, gray})

	case Histogram:
		charts = append(charts, channel{"histogram", "Grayscale", chart.Gray, gray})

	case Stretch:
		stretched := imp.Normalize(gray)
		res.After = imp.ComputeStats(stretched)
		res.addOutput("stretched", stretched)
		charts = append(charts,
			channel{"histogram_original", "Original", chart.Gray, gray},
			channel{"histogram_stretched", "Stretched", chart.Gray, stretched},
		)

	case Brighten:
		bright, err := imp.Brighten(gray, opts.Offset, opts.Policy)
		if err != nil {
			return nil, err
		}
		res.After = imp.ComputeStats(bright)
		res.addOutput("brightened", bright)
		charts = append(charts,
			channel{"histogram_original", "Original", chart.Gray, gray},
			channel{"histogram_brightened", fmt.Sprintf("Brightened (%+d, %s)", opts.Offset, opts.Policy), chart.Gray, bright},
		)

	case Channels:
		r, g, b := imp.SplitRGB(img)
		res.addOutput("red", r)
		res.addOutput("green", g)
		res.addOutput("blue", b)
		charts = append(charts,
			channel{"histogram_red", "Red channel", chart.Red, r},
			channel{"histogram_green", "Green channel", chart.Green, g},
			channel{"histogram_blue", "Blue channel", chart.Blue, b},
		)

	case Color:
		stretched, err := stretchChannels(ctx, img)
		if err != nil {
			return nil, err
		}
		merged, err := imp.MergeRGB(stretched[0], stretched[1], stretched[2])
		if err != nil {
			return nil, err
		}
		res.After = imp.ComputeStats(imp.ToGray(merged))
		res.addOutput("stretched", merged)
		charts = append(charts,
			channel{"histogram_red", "Red channel (stretched)", chart.Red, stretched[0]},
			channel{"histogram_green", "Green channel (stretched)", chart.Green, stretched[1]},
			channel{"histogram_blue", "Blue channel (stretched)", chart.Blue, stretched[2]},
		)

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	rendered, err := renderCharts(ctx, charts)
	if err != nil {
		return nil, err
	}
	for i, c := range charts {
		res.Charts = append(res.Charts, Chart{Name: res.filename(c.name), PNG: rendered[i]})
	}
	return res, nil
}

// stretchChannels normalizes the red, green and blue channels concurrently.
func stretchChannels(ctx context.Context, img image.Image) ([3]*image.Gray, error) {
	var out [3]*image.Gray
	r, g, b := imp.SplitRGB(img)

	eg, ctx := errgroup.WithContext(ctx)
	for i, ch := range []*image.Gray{r, g, b} {
		i, ch := i, ch
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = imp.Normalize(ch)
			return nil
		})
	}
	return out, eg.Wait()
}

// renderCharts renders the histogram of every channel concurrently.
func renderCharts(ctx context.Context, channels []channel) ([][]byte, error) {
	out := make([][]byte, len(channels))

	eg, ctx := errgroup.WithContext(ctx)
	for i, ch := range channels {
		i, ch := i, ch
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := chart.Histogram(ch.title, imp.ComputeHistogram(ch.img), ch.color)
			if err != nil {
				return err
			}
			var b bytes.Buffer
			if err := chart.WritePNG(&b, p); err != nil {
				return fmt.Errorf("couldn't render %s: %w", ch.name, err)
			}
			out[i] = b.Bytes()
			return nil
		})
	}
	return out, eg.Wait()
}
