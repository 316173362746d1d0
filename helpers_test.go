package seamcarver

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	imgWidth  = 10
	imgHeight = 10
)

// newRandomImage returns a width x height picture filled with seeded noise.
func newRandomImage(width, height int, seed int64) *image.NRGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = uint8(rnd.Intn(256))
		img.Pix[i+1] = uint8(rnd.Intn(256))
		img.Pix[i+2] = uint8(rnd.Intn(256))
		img.Pix[i+3] = 0xff
	}
	return img
}

// newUniformImage returns a width x height picture of a single color.
func newUniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// newIndexedImage encodes the (x, y) position of every pixel in its red and green channel.
func newIndexedImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x7f, A: 0xff})
		}
	}
	return img
}

// algs4Image is the 3x4 reference picture used by the classic seam carving exercise.
func algs4Image() *image.NRGBA {
	rows := [][][3]uint8{
		{{255, 101, 51}, {255, 101, 153}, {255, 101, 255}},
		{{255, 153, 51}, {255, 153, 153}, {255, 153, 255}},
		{{255, 203, 51}, {255, 204, 153}, {255, 205, 255}},
		{{255, 255, 51}, {255, 255, 153}, {255, 255, 255}},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 3, 4))
	for y, row := range rows {
		for x, px := range row {
			img.SetNRGBA(x, y, color.NRGBA{R: px[0], G: px[1], B: px[2], A: 0xff})
		}
	}
	return img
}

// seamEnergy sums the energy of the pixels crossed by a vertical seam.
func seamEnergy(g *Grid, seam Seam) float64 {
	var total float64
	for y, x := range seam {
		total += Energy(g, x, y)
	}
	return total
}

// bruteForceMinEnergy enumerates every vertical seam of g and returns the lowest total energy.
func bruteForceMinEnergy(g *Grid) float64 {
	w, h := g.Width(), g.Height()
	best := -1.0

	var walk func(y, x int, acc float64)
	walk = func(y, x int, acc float64) {
		acc += Energy(g, x, y)
		if y == h-1 {
			if best < 0 || acc < best {
				best = acc
			}
			return
		}
		for nx := x - 1; nx <= x+1; nx++ {
			if nx >= 0 && nx < w {
				walk(y+1, nx, acc)
			}
		}
	}
	for x := 0; x < w; x++ {
		walk(0, x, 0)
	}
	return best
}

// assertSeamShape checks the length, range and connectivity of a seam.
func assertSeamShape(t *testing.T, seam Seam, length, bound int) {
	t.Helper()

	assert.Len(t, seam, length)
	for i, v := range seam {
		assert.GreaterOrEqual(t, v, 0, "entry %d", i)
		assert.Less(t, v, bound, "entry %d", i)
		if i > 0 {
			d := v - seam[i-1]
			assert.True(t, d >= -1 && d <= 1, "entries %d and %d are not adjacent", i-1, i)
		}
	}
}
