package seamcarver

import "fmt"

// RemoveVerticalSeam returns a new grid one column narrower than g, with the
// pixel at seam[y] dropped from every row y. The seam is validated before
// anything is allocated; g itself is never modified.
func (g *Grid) RemoveVerticalSeam(seam Seam) (*Grid, error) {
	w, h := g.Width(), g.Height()
	if err := seam.Validate(h, w); err != nil {
		return nil, err
	}
	if w <= 1 {
		return nil, fmt.Errorf("%w: cannot remove a column from a %dx%d picture", ErrInvalidSeam, w, h)
	}

	out, err := NewGrid(w-1, h)
	if err != nil {
		return nil, err
	}
	src, dst := g.img, out.img
	for y := 0; y < h; y++ {
		si := src.PixOffset(0, y)
		di := dst.PixOffset(0, y)
		cut := seam[y] * 4
		row := src.Pix[si : si+w*4]

		// Shift the pixels following the seam one position to the left.
		copy(dst.Pix[di:di+cut], row[:cut])
		copy(dst.Pix[di+cut:di+(w-1)*4], row[cut+4:])
	}
	return out, nil
}
