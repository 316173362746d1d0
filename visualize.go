package seamcarver

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarver/utils"
)

// EnergyImage renders the energy of every pixel of the current picture as a
// grayscale image, scaled so that the highest energy maps to white.
func EnergyImage(c *Carver) *image.Gray {
	values, w, h := c.energies()

	var peak float64
	for _, e := range values {
		peak = utils.Max(peak, e)
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	if peak == 0 {
		return dst
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetGray(x, y, color.Gray{Y: uint8(values[x+y*w] / peak * 255)})
		}
	}
	return dst
}

// DrawSeam returns a copy of img with the seam pixels painted in col.
// A horizontal seam holds one row index per column, a vertical one
// holds one column index per row. Entries outside the image are skipped.
func DrawSeam(img image.Image, seam Seam, horizontal bool, col color.Color) *image.NRGBA {
	dst := imaging.Clone(img)
	b := dst.Bounds()
	for i, v := range seam {
		x, y := v, i
		if horizontal {
			x, y = i, v
		}
		if image.Pt(x, y).In(b) {
			dst.Set(x, y, col)
		}
	}
	return dst
}
