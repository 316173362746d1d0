package seamcarver

import "math"

// Energy returns the dual-gradient energy of the pixel at (x, y).
//
// The grid is treated as a torus when looking up the gradient neighbors,
// so the pixel before column 0 is column width-1 and the pixel after the
// last row is row 0.
func Energy(g *Grid, x, y int) float64 {
	w, h := g.Width(), g.Height()
	if !g.InBounds(x, y) {
		panic("seamcarver: energy requested outside of the grid")
	}
	left, right := x-1, x+1
	if x == 0 {
		left = w - 1
	}
	if x == w-1 {
		right = 0
	}
	up, down := y-1, y+1
	if y == 0 {
		up = h - 1
	}
	if y == h-1 {
		down = 0
	}

	pix, stride := g.img.Pix, g.img.Stride
	dx := gradient(pix, y*stride+right*4, y*stride+left*4)
	dy := gradient(pix, down*stride+x*4, up*stride+x*4)

	return math.Sqrt(float64(dx + dy))
}

// gradient returns the squared RGB difference between the pixels at offsets a and b.
func gradient(pix []uint8, a, b int) int {
	var sum int
	for c := 0; c < 3; c++ {
		d := int(pix[a+c]) - int(pix[b+c])
		sum += d * d
	}
	return sum
}

// EnergyMap memoizes the energy of every pixel of one grid layout.
// A separate presence flag marks computed cells, so a pixel whose energy
// is exactly zero is never recomputed.
type EnergyMap struct {
	grid     *Grid
	width    int
	height   int
	values   []float64
	computed []bool
}

// NewEnergyMap returns an empty energy cache bound to g.
func NewEnergyMap(g *Grid) *EnergyMap {
	w, h := g.Width(), g.Height()
	return &EnergyMap{
		grid:     g,
		width:    w,
		height:   h,
		values:   make([]float64, w*h),
		computed: make([]bool, w*h),
	}
}

// At returns the energy of the pixel at (x, y), computing it on first use.
func (em *EnergyMap) At(x, y int) float64 {
	if x < 0 || x >= em.width || y < 0 || y >= em.height {
		panic("seamcarver: energy requested outside of the grid")
	}
	idx := x + y*em.width
	if em.computed[idx] {
		return em.values[idx]
	}
	e := Energy(em.grid, x, y)
	em.values[idx] = e
	em.computed[idx] = true
	return e
}

// Width returns the number of columns covered by the map.
func (em *EnergyMap) Width() int { return em.width }

// Height returns the number of rows covered by the map.
func (em *EnergyMap) Height() int { return em.height }
