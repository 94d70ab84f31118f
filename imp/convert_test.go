package imp

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGray(t *testing.T) {
	g := grid([]uint8{1, 2})
	assert.Same(t, g, ToGray(g))

	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{255, 255, 255, 255})
	src.Set(1, 0, color.RGBA{0, 0, 0, 255})
	assert.Equal(t, [][]uint8{{255, 0}}, samples(ToGray(src)))
}

func TestSplitMergeRGB(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{10, 20, 30, 255})
	src.Set(1, 0, color.RGBA{40, 50, 60, 255})
	src.Set(0, 1, color.RGBA{70, 80, 90, 255})
	src.Set(1, 1, color.RGBA{255, 0, 128, 255})

	r, g, b := SplitRGB(src)
	assert.Equal(t, [][]uint8{{10, 40}, {70, 255}}, samples(r))
	assert.Equal(t, [][]uint8{{20, 50}, {80, 0}}, samples(g))
	assert.Equal(t, [][]uint8{{30, 60}, {90, 128}}, samples(b))

	merged, err := MergeRGB(r, g, b)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, src.RGBAAt(x, y), color.RGBAModel.Convert(merged.At(x, y)))
		}
	}
}

func TestMergeRGBBounds(t *testing.T) {
	_, err := MergeRGB(grid([]uint8{1}), grid([]uint8{1}), grid([]uint8{1, 2}))
	assert.ErrorIs(t, err, ErrBounds)
}
