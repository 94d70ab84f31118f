package imp

import (
	"image"
	"image/color"
)

var (
	Black = color.Gray{0}
	White = color.Gray{255}
)

// Gradient creates a h*w grayscale ramp going from 0 in the top-left corner
// to 255 in the bottom-right corner.
func Gradient(h, w int) *image.Gray {
	img := newGray(h, w)
	diag := h - 1 + w - 1
	if diag <= 0 {
		return img
	}
	for y := 0; y < h; y++ {
		out := row(img, y)
		for x := range out {
			out[x] = uint8((x + y) * 255 / diag)
		}
	}
	return img
}

// LowContrast creates a h*w image filled with bg, with a centered disc of
// color fg whose radius is a third of the smallest dimension.
func LowContrast(fg, bg uint8, h, w int) *image.Gray {
	img := newGray(h, w)
	cx, cy := w/2, h/2
	radius := h
	if w < h {
		radius = w
	}
	radius /= 3

	for y := 0; y < h; y++ {
		out := row(img, y)
		for x := range out {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				out[x] = fg
			} else {
				out[x] = bg
			}
		}
	}
	return img
}

// Where WithOutliers puts its black and white samples, relative to the
// top-left corner.
var (
	BlackOutlier = image.Point{X: 10, Y: 10}
	WhiteOutlier = image.Point{X: 20, Y: 10}
)

// WithOutliers returns a copy of src with one sample forced to 0 and another
// to 255. Positions falling outside of small images are clamped to the last
// row and column.
func WithOutliers(src *image.Gray) *image.Gray {
	rect := src.Bounds()
	dst := image.NewGray(rect)
	if rect.Empty() {
		return dst
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		copy(row(dst, y), row(src, y))
	}

	at := func(p image.Point) (int, int) {
		p = p.Add(rect.Min)
		if p.X >= rect.Max.X {
			p.X = rect.Max.X - 1
		}
		if p.Y >= rect.Max.Y {
			p.Y = rect.Max.Y - 1
		}
		return p.X, p.Y
	}
	x, y := at(BlackOutlier)
	dst.SetGray(x, y, Black)
	x, y = at(WhiteOutlier)
	dst.SetGray(x, y, White)
	return dst
}

// newGray allocates a h*w image anchored at the origin. Negative sizes yield
// an empty image.
func newGray(h, w int) *image.Gray {
	if h < 0 || w < 0 {
		h, w = 0, 0
	}
	return image.NewGray(image.Rect(0, 0, w, h))
}
