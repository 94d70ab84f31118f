package imp

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// Overflow selects what happens when a brightened sample leaves [0, 255].
// The zero value is deliberately not a valid policy.
type Overflow int

const (
	// Wrap lets samples wrap around modulo 256 (what numpy.add does on uint8).
	Wrap Overflow = iota + 1
	// Saturate clamps samples to 0 and 255 (what cv2.add does).
	Saturate
)

// ErrOverflowPolicy is returned when no valid overflow policy was chosen.
var ErrOverflowPolicy = errors.New("overflow policy must be either wrap or saturate")

func (o Overflow) String() string {
	switch o {
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

// ParseOverflow reads an overflow policy from its name.
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "wrapping", "np":
		return Wrap, nil
	case "saturate", "saturating", "sat", "cv2":
		return Saturate, nil
	}
	return 0, fmt.Errorf("%w (got %q)", ErrOverflowPolicy, s)
}

// WrappingAdd adds b to p modulo 256.
func WrappingAdd(p uint8, b int) uint8 {
	// Integer conversion truncates to the low byte, which is the modulo.
	return uint8(int(p) + b)
}

// SaturatingAdd adds b to p, clamping the result to [0, 255].
func SaturatingAdd(p uint8, b int) uint8 {
	return clamp(int(p) + b)
}

// Brighten adds b to every sample of src using the given overflow policy.
func Brighten(src *image.Gray, b int, policy Overflow) (*image.Gray, error) {
	var add func(uint8, int) uint8
	switch policy {
	case Wrap:
		add = WrappingAdd
	case Saturate:
		add = SaturatingAdd
	default:
		return nil, ErrOverflowPolicy
	}

	rect := src.Bounds()
	dst := image.NewGray(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		out := row(dst, y)
		for x, val := range row(src, y) {
			out[x] = add(val, b)
		}
	}
	return dst, nil
}

// AbsDiff returns |a - b| for every pair of samples.
func AbsDiff(a, b *image.Gray) (*image.Gray, error) {
	if a.Bounds() != b.Bounds() {
		return nil, ErrBounds
	}

	rect := a.Bounds()
	dst := image.NewGray(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		out, rb := row(dst, y), row(b, y)
		for x, va := range row(a, y) {
			if va > rb[x] {
				out[x] = va - rb[x]
			} else {
				out[x] = rb[x] - va
			}
		}
	}
	return dst, nil
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
