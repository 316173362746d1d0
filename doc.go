/*
Package seamcarver is a content aware image resize library. It shrinks a picture
one seam at a time, where a seam is a connected path of pixels crossing the picture
from top to bottom (vertical seam) or from left to right (horizontal seam).

The importance of every pixel is measured with the dual-gradient energy function,
which treats the picture as a torus when looking up the neighbors of border pixels.
The lowest energy seam is found with a shortest path search over the implicit
grid DAG. Horizontal seams reuse the vertical algorithms on the transposed picture.

The low level API works on a single Carver:

	c, err := seamcarver.New(img)
	if err != nil {
		return err
	}
	for c.Width() > 300 {
		if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
			return err
		}
	}
	res := c.Picture()

The Processor wraps the same steps for a target size:

	p := &seamcarver.Processor{NewWidth: 300, NewHeight: 200}
	if err := p.Process(ctx, in, out, seamcarver.FormatPNG); err != nil {
		fmt.Printf("Error rescaling image: %s", err.Error())
	}
*/
package seamcarver
