package imp

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// Histogram counts how many samples take each of the 256 possible values.
type Histogram [256]int

// ComputeHistogram tallies every sample of src.
func ComputeHistogram(src *image.Gray) Histogram {
	var h Histogram
	rect := src.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for _, val := range row(src, y) {
			h[val]++
		}
	}
	return h
}

// Total returns the number of samples that were counted.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Stats summarizes the range of a grayscale image.
type Stats struct {
	Samples int
	Min     uint8
	Max     uint8
	Mean    float64

	// StretchFactor is 255/(Max-Min), the slope applied by Normalize.
	// It is 0 when the image is Flat.
	StretchFactor float64
	Flat          bool
}

// ComputeStats returns the statistics of src.
func ComputeStats(src *image.Gray) Stats {
	h := ComputeHistogram(src)
	return h.Stats()
}

// Stats derives image statistics from the histogram alone.
func (h *Histogram) Stats() Stats {
	s := Stats{Samples: h.Total()}
	if s.Samples == 0 {
		s.Flat = true
		return s
	}

	levels := make([]float64, len(h))
	weights := make([]float64, len(h))
	first := true
	for v, c := range h {
		levels[v] = float64(v)
		weights[v] = float64(c)
		if c == 0 {
			continue
		}
		if first {
			s.Min = uint8(v)
			first = false
		}
		s.Max = uint8(v)
	}
	s.Mean = stat.Mean(levels, weights)

	if s.Min == s.Max {
		s.Flat = true
	} else {
		s.StretchFactor = 255 / float64(s.Max-s.Min)
	}
	return s
}
