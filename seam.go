package seamcarver

import (
	"fmt"
	"math"

	"github.com/esimov/seamcarver/utils"
)

// Seam holds one index per row (vertical seam) or per column (horizontal seam).
type Seam []int

// Validate checks that the seam has the expected length, that every entry
// lies in [0, bound) and that consecutive entries differ by at most one.
func (s Seam) Validate(length, bound int) error {
	if s == nil {
		return fmt.Errorf("%w: nil seam", ErrInvalidArgument)
	}
	if len(s) != length {
		return fmt.Errorf("%w: length %d, expected %d", ErrInvalidSeam, len(s), length)
	}
	for i, v := range s {
		if v < 0 || v >= bound {
			return fmt.Errorf("%w: entry %d at index %d outside [0, %d)", ErrInvalidSeam, v, i, bound)
		}
		if i > 0 && utils.Abs(v-s[i-1]) > 1 {
			return fmt.Errorf("%w: entries %d and %d at index %d are not adjacent", ErrInvalidSeam, s[i-1], v, i)
		}
	}
	return nil
}

// DPTable holds the shortest path state of a vertical seam search.
// Both tables are flat and indexed by x + y*width.
type DPTable struct {
	width  int
	height int
	distTo []float64
	edgeTo []int
}

// NewDPTable allocates the search tables for a width x height grid.
func NewDPTable(width, height int) *DPTable {
	return &DPTable{
		width:  width,
		height: height,
		distTo: make([]float64, width*height),
		edgeTo: make([]int, width*height),
	}
}

// Get the cumulative energy of the cheapest path reaching (x, y).
func (dpt *DPTable) get(x, y int) float64 {
	return dpt.distTo[x+y*dpt.width]
}

// Set the cumulative energy and the predecessor column of (x, y).
func (dpt *DPTable) set(x, y int, dist float64, from int) {
	idx := x + y*dpt.width
	dpt.distTo[idx] = dist
	dpt.edgeTo[idx] = from
}

// Solve computes the cheapest top to bottom path over the energy map.
// The grid is an implicit DAG whose rows are already in topological order:
//   - every pixel of the first row is a source, with its own energy as distance;
//   - every pixel relaxes the up to three pixels below it, (x-1, x, x+1);
//   - an edge is taken only when it is strictly cheaper, so on ties the
//     leftmost predecessor wins.
func (dpt *DPTable) Solve(em *EnergyMap) {
	for x := 0; x < dpt.width; x++ {
		dpt.set(x, 0, em.At(x, 0), -1)
	}
	for y := 1; y < dpt.height; y++ {
		for x := 0; x < dpt.width; x++ {
			dpt.set(x, y, math.Inf(1), -1)
		}
	}

	for y := 0; y < dpt.height-1; y++ {
		for x := 0; x < dpt.width; x++ {
			dist := dpt.get(x, y)
			for nx := x - 1; nx <= x+1; nx++ {
				if nx < 0 || nx >= dpt.width {
					continue
				}
				if d := dist + em.At(nx, y+1); dpt.get(nx, y+1) > d {
					dpt.set(nx, y+1, d, x)
				}
			}
		}
	}
}

// Seam walks the predecessor table back from the cheapest pixel of the last row.
func (dpt *DPTable) Seam() Seam {
	last := dpt.height - 1
	px := 0
	for x := 1; x < dpt.width; x++ {
		if dpt.get(x, last) < dpt.get(px, last) {
			px = x
		}
	}

	seam := make(Seam, dpt.height)
	seam[last] = px
	for y := last; y > 0; y-- {
		px = dpt.edgeTo[px+y*dpt.width]
		seam[y-1] = px
	}
	return seam
}

// FindVerticalSeam returns the minimum energy top to bottom seam of g.
func FindVerticalSeam(g *Grid) Seam {
	return findVerticalSeam(NewEnergyMap(g))
}

func findVerticalSeam(em *EnergyMap) Seam {
	dpt := NewDPTable(em.Width(), em.Height())
	dpt.Solve(em)
	return dpt.Seam()
}
