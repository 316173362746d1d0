package seamcarver

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Supported output formats.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
)

var extFormats = map[string]string{
	"":      FormatJPEG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".png":  FormatPNG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
}

// Extensions lists the file extensions accepted as input.
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

// FormatFromPath returns the output format matching the extension of path.
// A path without extension, like a pipe, is encoded as jpeg.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: unsupported image format %q", ErrInvalidArgument, ext)
}

// Decode reads an image in any of the registered formats.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode the source image: %w", err)
	}
	return img, format, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case FormatPNG:
		return png.Encode(w, img)
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: unsupported image format %q", ErrInvalidArgument, format)
	}
}
