package imp

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Formats that imaging can't decode on its own.
	_ "golang.org/x/image/webp"
)

// Extensions lists the image file extensions that can be read.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Supported returns true if filename has an extension that can be read.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ReadFile reads an image from a file.
func ReadFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// ReadBytes reads an image from raw bytes.
func ReadBytes(data []byte) (image.Image, error) {
	return Read(bytes.NewReader(data))
}

// Read reads an image from a io.Reader, honoring EXIF orientation.
func Read(r io.Reader) (image.Image, error) {
	return imaging.Decode(r, imaging.AutoOrientation(true))
}

// Save creates a file and writes an image to it. Image format is decided based
// upon its extension.
func Save(filename string, img image.Image) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return fmt.Errorf("unknown extension %v", filepath.Ext(filename))
	}
	return imaging.Save(img, filename, imaging.JPEGQuality(100))
}

// Encode writes an image to w in the format matching filename's extension.
func Encode(w io.Writer, img image.Image, filename string) error {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return fmt.Errorf("unknown extension %v", filepath.Ext(filename))
	}
	return imaging.Encode(w, img, format, imaging.JPEGQuality(100))
}
