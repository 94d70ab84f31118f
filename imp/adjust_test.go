package imp

import (
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	min, max := Range(grid([]uint8{7, 3, 9}, []uint8{200, 4, 5}))
	assert.Equal(t, uint8(3), min)
	assert.Equal(t, uint8(200), max)

	min, max = Range(image.NewGray(image.Rectangle{}))
	assert.Equal(t, uint8(0), min)
	assert.Equal(t, uint8(0), max)
}

func TestNormalize(t *testing.T) {
	src := grid(
		[]uint8{100, 100, 105},
		[]uint8{101, 102, 105},
	)
	want := [][]uint8{
		{0, 0, 255},
		{51, 102, 255},
	}
	got := Normalize(src)
	if diff := cmp.Diff(want, samples(got)); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}

	// The source is left untouched.
	assert.Equal(t, [][]uint8{{100, 100, 105}, {101, 102, 105}}, samples(src))
}

func TestNormalizeTruncates(t *testing.T) {
	// 1*255/3 = 85, 2*255/3 = 170: exact. 1*255/4 = 63.75 truncates to 63.
	got := Normalize(grid([]uint8{10, 11, 12, 13, 14}))
	assert.Equal(t, [][]uint8{{0, 63, 127, 191, 255}}, samples(got))
}

func TestNormalizeFlat(t *testing.T) {
	for _, v := range []uint8{0, 42, 255} {
		src := filled(v, 4, 7)
		got := Normalize(src)
		assert.Equal(t, samples(src), samples(got), "value %d", v)
		assert.NotSame(t, src, got)
	}
}

func TestNormalizeSpansFullRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		src := randomGray(rng, rng.Intn(128), 128+rng.Intn(128))
		min, max := Range(src)
		if min == max {
			continue
		}
		h := ComputeHistogram(Normalize(src))
		assert.NotZero(t, h[0], "no sample mapped to 0")
		assert.NotZero(t, h[255], "no sample mapped to 255")
	}
}

func TestNormalizeMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		src := randomGray(rng, 30, 220)
		dst := Normalize(src)

		// Build the value mapping and check it never decreases.
		mapping := map[uint8]uint8{}
		for j, v := range src.Pix {
			mapping[v] = dst.Pix[j]
		}
		last := -1
		for v := 0; v < 256; v++ {
			out, ok := mapping[uint8(v)]
			if !ok {
				continue
			}
			require.GreaterOrEqual(t, int(out), last, "value %d", v)
			last = int(out)
		}
	}
}

func TestNormalizeIdempotentOnFullRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	src := randomGray(rng, 60, 90)
	once := Normalize(src)
	twice := Normalize(once)
	assert.Equal(t, samples(once), samples(twice))

	// Not a general law: the first pass changes a narrow image.
	assert.NotEqual(t, samples(src), samples(once))
}

func TestNormalizeOutliers(t *testing.T) {
	src := WithOutliers(filled(100, 30, 30))
	got := Normalize(src)
	assert.Equal(t, samples(src), samples(got))
	assert.Equal(t, uint8(100), got.GrayAt(5, 5).Y)
}

func TestNormalizeInto(t *testing.T) {
	src := grid([]uint8{50, 60}, []uint8{70, 80})

	err := NormalizeInto(src, image.NewGray(image.Rect(0, 0, 3, 3)))
	assert.ErrorIs(t, err, ErrBounds)

	require.NoError(t, NormalizeInto(src, src))
	assert.Equal(t, [][]uint8{{0, 85}, {170, 255}}, samples(src))
}

func TestNormalizeSubImage(t *testing.T) {
	big := grid(
		[]uint8{0, 0, 0, 0},
		[]uint8{0, 20, 30, 0},
		[]uint8{0, 40, 50, 255},
	)
	sub := big.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)
	got := Normalize(sub)
	assert.Equal(t, sub.Bounds(), got.Bounds())
	assert.Equal(t, [][]uint8{{0, 85}, {170, 255}}, samples(got))
}

func TestStretchColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	copy(src.Pix, []uint8{
		10, 100, 7, 255,
		20, 100, 9, 128,
	})
	got := StretchColor(src)
	assert.Equal(t, []uint8{
		0, 100, 0, 255,
		255, 100, 255, 128,
	}, got.Pix)
}
