package imp

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		p         uint8
		b         int
		wrap, sat uint8
	}{
		{200, 100, 44, 255},
		{0, 0, 0, 0},
		{255, 1, 0, 255},
		{10, -20, 246, 0},
		{128, 127, 255, 255},
		{1, 511, 0, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wrap, WrappingAdd(tt.p, tt.b), "WrappingAdd(%d, %d)", tt.p, tt.b)
		assert.Equal(t, tt.sat, SaturatingAdd(tt.p, tt.b), "SaturatingAdd(%d, %d)", tt.p, tt.b)
	}
}

func TestBrighten(t *testing.T) {
	src := grid([]uint8{0, 100, 155, 156, 255})

	wrapped, err := Brighten(src, 100, Wrap)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{100, 200, 255, 0, 99}}, samples(wrapped))

	saturated, err := Brighten(src, 100, Saturate)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{100, 200, 255, 255, 255}}, samples(saturated))

	diff, err := AbsDiff(wrapped, saturated)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{0, 0, 0, 255, 156}}, samples(diff))
}

func TestBrightenNeedsPolicy(t *testing.T) {
	src := grid([]uint8{1, 2})
	for _, policy := range []Overflow{0, 3, -1} {
		_, err := Brighten(src, 10, policy)
		assert.ErrorIs(t, err, ErrOverflowPolicy)
	}
}

func TestParseOverflow(t *testing.T) {
	for in, want := range map[string]Overflow{
		"wrap":      Wrap,
		"np":        Wrap,
		" Wrapping": Wrap,
		"saturate":  Saturate,
		"cv2":       Saturate,
		"SAT":       Saturate,
	} {
		got, err := ParseOverflow(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOverflow("")
	assert.ErrorIs(t, err, ErrOverflowPolicy)
	_, err = ParseOverflow("clip")
	assert.ErrorIs(t, err, ErrOverflowPolicy)
}

func TestOverflowString(t *testing.T) {
	assert.Equal(t, "wrap", Wrap.String())
	assert.Equal(t, "saturate", Saturate.String())
	assert.Equal(t, "Overflow(0)", Overflow(0).String())
}

func TestAbsDiffBounds(t *testing.T) {
	_, err := AbsDiff(grid([]uint8{1}), image.NewGray(image.Rect(0, 0, 2, 2)))
	assert.ErrorIs(t, err, ErrBounds)
}
