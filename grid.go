package seamcarver

import (
	"fmt"
	"image"
	"image/color"
	"reflect"

	"github.com/disintegration/imaging"
)

// Grid is the pixel buffer the carver operates on. It owns its backing
// *image.NRGBA exclusively; structural changes produce a new Grid.
type Grid struct {
	img *image.NRGBA
}

// NewGrid allocates a black, fully opaque grid of the given size.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidArgument, width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return &Grid{img: img}, nil
}

// GridFromImage copies src into a new grid with its origin at (0, 0).
func GridFromImage(src image.Image) (*Grid, error) {
	if isNilImage(src) {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	b := src.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: empty image %v", ErrInvalidArgument, b)
	}
	return &Grid{img: imaging.Clone(src)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.img.Rect.Dx() }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.img.Rect.Dy() }

// InBounds reports whether (x, y) addresses a pixel of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// RGB returns the color channels of the pixel at (x, y).
// It panics if (x, y) lies outside the grid.
func (g *Grid) RGB(x, y int) (r, gr, b uint8) {
	i := g.offset(x, y)
	return g.img.Pix[i], g.img.Pix[i+1], g.img.Pix[i+2]
}

// At returns the color of the pixel at (x, y).
// It panics if (x, y) lies outside the grid.
func (g *Grid) At(x, y int) color.NRGBA {
	i := g.offset(x, y)
	s := g.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Set replaces the color of the pixel at (x, y).
// It panics if (x, y) lies outside the grid.
func (g *Grid) Set(x, y int, c color.Color) {
	i := g.offset(x, y)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := g.img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = n.R, n.G, n.B, n.A
}

// Transpose returns a new grid with rows and columns swapped:
// pixel (x, y) of the result is pixel (y, x) of g.
func (g *Grid) Transpose() *Grid {
	return &Grid{img: imaging.Transpose(g.img)}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{img: imaging.Clone(g.img)}
}

// Image returns a copy of the grid content as an image.
func (g *Grid) Image() *image.NRGBA {
	return g.Clone().img
}

// isNilImage reports whether img is nil or wraps a nil pointer,
// like a (*image.NRGBA)(nil) passed as an image.Image.
func isNilImage(img image.Image) bool {
	if img == nil {
		return true
	}
	v := reflect.ValueOf(img)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func (g *Grid) offset(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("seamcarver: pixel (%d, %d) out of range %dx%d", x, y, g.Width(), g.Height()))
	}
	return g.img.PixOffset(x, y)
}
