package process

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/ArnaudCalmettes/stretcher/imp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for name, want := range map[string]Kind{
		"stretch":           Stretch,
		" Color ":           Color,
		"rgb_channels":      Channels,
		"grayscale_stretch": Stretch,
		"hist":              Histogram,
	} {
		got, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestLookupSuggests(t *testing.T) {
	_, err := Lookup("strech")
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), `did you mean "stretch"?`)

	_, err = Lookup("zzzzzzzzzzzz")
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.NotContains(t, err.Error(), "did you mean")
}

func colorful(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(50 + x),
				G: uint8(100 + y),
				B: uint8(120 + (x+y)%20),
				A: 255,
			})
		}
	}
	return img
}

func outputNames(res *Result) []string {
	names := make([]string, 0, len(res.Outputs))
	for _, o := range res.Outputs {
		names = append(names, strings.TrimSuffix(o.Name, "_"+res.ID.String()+".png"))
	}
	return names
}

func TestRunStretch(t *testing.T) {
	res, err := Run(context.Background(), Stretch, imp.LowContrast(105, 100, 60, 60), Options{})
	require.NoError(t, err)

	assert.Equal(t, Stretch, res.Kind)
	assert.Equal(t, []string{"stretched"}, outputNames(res))
	assert.Len(t, res.Charts, 2)
	assert.Equal(t, uint8(100), res.Before.Min)
	assert.Equal(t, uint8(105), res.Before.Max)
	assert.Equal(t, uint8(0), res.After.Min)
	assert.Equal(t, uint8(255), res.After.Max)

	for _, c := range res.Charts {
		_, err := png.Decode(bytes.NewReader(c.PNG))
		assert.NoError(t, err, c.Name)
		assert.True(t, strings.HasSuffix(c.Name, res.ID.String()+".png"))
	}

	var b bytes.Buffer
	require.NoError(t, res.Outputs[0].Encode(&b))
	img, err := imp.ReadBytes(b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 60, 60), img.Bounds())
}

func TestRunBrighten(t *testing.T) {
	src := imp.Gradient(20, 20)

	_, err := Run(context.Background(), Brighten, src, Options{Offset: 100})
	assert.ErrorIs(t, err, imp.ErrOverflowPolicy)

	res, err := Run(context.Background(), Brighten, src, Options{Offset: 100, Policy: imp.Saturate})
	require.NoError(t, err)
	assert.Equal(t, uint8(100), res.After.Min)
	assert.Equal(t, uint8(255), res.After.Max)

	res, err = Run(context.Background(), Brighten, src, Options{Offset: 100, Policy: imp.Wrap})
	require.NoError(t, err)
	assert.Less(t, res.After.Min, uint8(100), "bright samples should wrap to dark ones")
	assert.Equal(t, []string{"brightened"}, outputNames(res))
}

func TestRunChannels(t *testing.T) {
	res, err := Run(context.Background(), Channels, colorful(10, 10), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green", "blue"}, outputNames(res))
	assert.Len(t, res.Charts, 3)

	red := res.Outputs[0].Image.(*image.Gray)
	assert.Equal(t, uint8(59), red.GrayAt(9, 0).Y)
}

func TestRunColor(t *testing.T) {
	res, err := Run(context.Background(), Color, colorful(10, 10), Options{})
	require.NoError(t, err)
	require.Len(t, res.Outputs, 1)

	out := res.Outputs[0].Image.(*image.NRGBA)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, out.NRGBAAt(9, 9))
	assert.Len(t, res.Charts, 3)
}

func TestRunGrayAndHistogram(t *testing.T) {
	res, err := Run(context.Background(), Gray, colorful(5, 5), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"gray"}, outputNames(res))
	assert.Len(t, res.Charts, 1)

	res, err = Run(context.Background(), Histogram, colorful(5, 5), Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Outputs)
	assert.Len(t, res.Charts, 1)
	assert.Equal(t, 25, res.Before.Samples)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), Kind("sepia"), colorful(2, 2), Options{})
	assert.ErrorIs(t, err, ErrUnknownKind)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, Stretch, colorful(2, 2), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
