package process

import (
	"errors"
	"fmt"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// A Kind names one of the available processing pipelines.
type Kind string

// Available kinds
const (
	Channels  Kind = "channels"  // split into red, green and blue
	Gray      Kind = "gray"      // luma only
	Stretch   Kind = "stretch"   // luma, then histogram stretching
	Color     Kind = "color"     // histogram stretching of each color channel
	Brighten  Kind = "brighten"  // add an offset to the luma
	Histogram Kind = "histogram" // luma histogram only
)

// Kinds lists all available kinds, in the order they should be presented.
var Kinds = []Kind{Channels, Gray, Stretch, Color, Brighten, Histogram}

var aliases = map[string]Kind{
	"rgb":               Channels,
	"rgb_channels":      Channels,
	"grey":              Gray,
	"grayscale":         Gray,
	"grayscale_stretch": Stretch,
	"normalize":         Stretch,
	"color_stretch":     Color,
	"colour":            Color,
	"hist":              Histogram,
}

// ErrUnknownKind is returned when a name doesn't match any kind.
var ErrUnknownKind = errors.New("unknown processing kind")

// Describe returns a short human readable description of k.
func (k Kind) Describe() string {
	switch k {
	case Channels:
		return "RGB color channels separation"
	case Gray:
		return "grayscale conversion"
	case Stretch:
		return "grayscale with histogram stretching"
	case Color:
		return "color histogram stretching"
	case Brighten:
		return "grayscale brightening"
	case Histogram:
		return "grayscale histogram"
	}
	return string(k)
}

// Lookup finds the kind matching a name or an alias. When nothing matches,
// the error suggests the closest kind.
func Lookup(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}

	best, score := closest(name)
	if score <= len(best)/2 {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKind, name, best)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, name)
}

func closest(name string) (best Kind, score int) {
	score = -1
	for _, k := range Kinds {
		d := levenshtein.DistanceForStrings([]rune(name), []rune(string(k)), levenshtein.DefaultOptions)
		if score < 0 || d < score {
			best, score = k, d
		}
	}
	return
}
