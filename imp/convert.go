package imp

import (
	"image"

	"golang.org/x/image/draw"
)

// ToGray converts any image in a grayscale picture of the same size
func ToGray(src image.Image) *image.Gray {
	if dst, ok := src.(*image.Gray); ok {
		return dst
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	model := dst.ColorModel()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, model.Convert(src.At(x, y)))
		}
	}
	return dst
}

// SplitRGB separates the red, green and blue channels of an image.
func SplitRGB(img image.Image) (r, g, b *image.Gray) {
	r, g, b, _ = splitNRGBA(toNRGBA(img))
	return r, g, b
}

// MergeRGB assembles three channels into an opaque color image.
func MergeRGB(r, g, b *image.Gray) (*image.NRGBA, error) {
	if r.Bounds() != g.Bounds() || r.Bounds() != b.Bounds() {
		return nil, ErrBounds
	}
	a := image.NewGray(r.Bounds())
	for i := range a.Pix {
		a.Pix[i] = 255
	}
	return mergeNRGBA(r, g, b, a), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if dst, ok := img.(*image.NRGBA); ok {
		return dst
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}

func splitNRGBA(src *image.NRGBA) (r, g, b, a *image.Gray) {
	bounds := src.Bounds()
	r, g, b, a = image.NewGray(bounds), image.NewGray(bounds), image.NewGray(bounds), image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := src.PixOffset(bounds.Min.X, y)
		pix := src.Pix[i : i+4*bounds.Dx()]
		rr, gg, bb, aa := row(r, y), row(g, y), row(b, y), row(a, y)
		for x := range rr {
			rr[x], gg[x], bb[x], aa[x] = pix[4*x], pix[4*x+1], pix[4*x+2], pix[4*x+3]
		}
	}
	return r, g, b, a
}

func mergeNRGBA(r, g, b, a *image.Gray) *image.NRGBA {
	bounds := r.Bounds()
	dst := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := dst.PixOffset(bounds.Min.X, y)
		pix := dst.Pix[i : i+4*bounds.Dx()]
		rr, gg, bb, aa := row(r, y), row(g, y), row(b, y), row(a, y)
		for x := range rr {
			pix[4*x], pix[4*x+1], pix[4*x+2], pix[4*x+3] = rr[x], gg[x], bb[x], aa[x]
		}
	}
	return dst
}
