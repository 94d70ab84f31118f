package imp

import (
	"image"
	"math/rand"
)

// grid builds a grayscale image from rows of samples.
func grid(rows ...[]uint8) *image.Gray {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y, r := range rows {
		copy(row(img, y), r)
	}
	return img
}

// samples flattens a grayscale image back into rows.
func samples(img *image.Gray) [][]uint8 {
	rect := img.Bounds()
	res := make([][]uint8, 0, rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		res = append(res, append([]uint8(nil), row(img, y)...))
	}
	return res
}

func randomGray(rng *rand.Rand, lo, hi int) *image.Gray {
	w, h := 1+rng.Intn(40), 1+rng.Intn(40)
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(lo + rng.Intn(hi-lo+1))
	}
	return img
}

func filled(v uint8, h, w int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}
