package seamcarver

import (
	"fmt"
	"image"
	"sync"
)

// Carver removes minimum energy seams from a picture, one at a time.
//
// The picture is stored either as given or transposed. Horizontal seam
// operations run the vertical algorithms on the transposed layout; the
// layout is only switched when an operation asks for the other axis, so
// a run of horizontal removals pays for a single transpose.
//
// A Carver is safe for concurrent use: every operation holds one lock
// covering the grid, the orientation flag and the energy cache.
type Carver struct {
	mu         sync.Mutex
	grid       *Grid
	transposed bool
	energy     *EnergyMap
}

// New creates a Carver working on a private copy of img.
func New(img image.Image) (*Carver, error) {
	g, err := GridFromImage(img)
	if err != nil {
		return nil, err
	}
	return &Carver{grid: g}, nil
}

// Picture returns a copy of the current picture in its original orientation.
func (c *Carver) Picture() *image.NRGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transposed {
		return c.grid.Transpose().img
	}
	return c.grid.Image()
}

// Width returns the width of the current picture.
func (c *Carver) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width()
}

// Height returns the height of the current picture.
func (c *Carver) Height() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height()
}

// Energy returns the energy of the pixel at column x and row y.
func (c *Carver) Energy(x, y int) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if x < 0 || x >= c.width() || y < 0 || y >= c.height() {
		return 0, fmt.Errorf("%w: pixel (%d, %d) outside %dx%d picture",
			ErrInvalidArgument, x, y, c.width(), c.height())
	}
	// The energy function is symmetric in its two gradients,
	// so the transposed layout only swaps the coordinates.
	if c.transposed {
		x, y = y, x
	}
	return c.energyMap().At(x, y), nil
}

// energies returns the energy of every pixel in row-major order, together
// with the picture size, all read under a single lock.
func (c *Carver) energies() (values []float64, width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, h := c.width(), c.height()
	em := c.energyMap()
	values = make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.transposed {
				values[x+y*w] = em.At(y, x)
			} else {
				values[x+y*w] = em.At(x, y)
			}
		}
	}
	return values, w, h
}

// FindVerticalSeam returns the column index of the seam pixel in every row.
func (c *Carver) FindVerticalSeam() Seam {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orient(false)
	return findVerticalSeam(c.energyMap())
}

// FindHorizontalSeam returns the row index of the seam pixel in every column.
func (c *Carver) FindHorizontalSeam() Seam {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orient(true)
	return findVerticalSeam(c.energyMap())
}

// RemoveVerticalSeam removes one pixel per row, making the picture one column narrower.
// An invalid seam leaves the picture untouched.
func (c *Carver) RemoveVerticalSeam(seam Seam) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.check(seam, c.height(), c.width()); err != nil {
		return err
	}
	c.orient(false)
	return c.remove(seam)
}

// RemoveHorizontalSeam removes one pixel per column, making the picture one row shorter.
// An invalid seam leaves the picture untouched.
func (c *Carver) RemoveHorizontalSeam(seam Seam) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.check(seam, c.width(), c.height()); err != nil {
		return err
	}
	c.orient(true)
	return c.remove(seam)
}

// check validates the seam against the user visible dimensions,
// before any transpose takes place.
func (c *Carver) check(seam Seam, length, bound int) error {
	if err := seam.Validate(length, bound); err != nil {
		return err
	}
	if bound <= 1 {
		return fmt.Errorf("%w: picture is already %d pixel wide on the seam axis", ErrInvalidSeam, bound)
	}
	return nil
}

func (c *Carver) remove(seam Seam) error {
	g, err := c.grid.RemoveVerticalSeam(seam)
	if err != nil {
		return err
	}
	c.grid = g
	c.energy = nil
	return nil
}

// orient switches the stored layout when it differs from the requested one.
func (c *Carver) orient(transposed bool) {
	if c.transposed == transposed {
		return
	}
	c.grid = c.grid.Transpose()
	c.transposed = transposed
	c.energy = nil
}

func (c *Carver) energyMap() *EnergyMap {
	if c.energy == nil {
		c.energy = NewEnergyMap(c.grid)
	}
	return c.energy
}

func (c *Carver) width() int {
	if c.transposed {
		return c.grid.Height()
	}
	return c.grid.Width()
}

func (c *Carver) height() int {
	if c.transposed {
		return c.grid.Width()
	}
	return c.grid.Height()
}
