package imp

import (
	"errors"
	"image"
)

// ErrBounds is returned when two grids that should be aligned are not.
var ErrBounds = errors.New("src and dst should have the same bounds")

// Range returns the smallest and largest samples of a grayscale image.
// An empty image has the range (0, 0).
func Range(src *image.Gray) (min, max uint8) {
	rect := src.Bounds()
	if rect.Empty() {
		return 0, 0
	}

	min, max = 255, 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for _, val := range row(src, y) {
			if val < min {
				min = val
			}
			if val > max {
				max = val
			}
		}
	}
	return min, max
}

// Normalize returns a copy of a grayscale image stretched so it spans the
// whole colorspace: the darkest sample becomes 0 and the brightest 255.
// Flat images are returned unchanged.
func Normalize(src *image.Gray) *image.Gray {
	dst := image.NewGray(src.Bounds())
	NormalizeInto(src, dst)
	return dst
}

// NormalizeInto is like Normalize but writes into dst, which may be src.
func NormalizeInto(src, dst *image.Gray) error {
	if src.Bounds() != dst.Bounds() {
		return ErrBounds
	}

	min, max := Range(src)
	rect := src.Bounds()

	if min == max {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			copy(row(dst, y), row(src, y))
		}
		return nil
	}

	// Integer division truncates exactly like the float formula would, and
	// keeps min -> 0 and max -> 255 exact.
	alpha := int(max) - int(min)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		out := row(dst, y)
		for x, val := range row(src, y) {
			out[x] = uint8((int(val) - int(min)) * 255 / alpha)
		}
	}
	return nil
}

// StretchColor normalizes the red, green and blue channels of an image
// independently. Alpha is kept as is.
func StretchColor(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	r, g, b, a := splitNRGBA(src)
	for _, ch := range []*image.Gray{r, g, b} {
		NormalizeInto(ch, ch)
	}
	return mergeNRGBA(r, g, b, a)
}

// row returns the samples of the y-th line of img, within its bounds.
func row(img *image.Gray, y int) []uint8 {
	rect := img.Bounds()
	i := img.PixOffset(rect.Min.X, y)
	return img.Pix[i : i+rect.Dx()]
}
