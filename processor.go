package seamcarver

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarver/utils"
)

// Processor options
type Processor struct {
	// NewWidth and NewHeight are the requested picture size.
	// Zero keeps the original size along that axis.
	NewWidth  int
	NewHeight int
	// Percentage interprets NewWidth and NewHeight as the percent
	// of the width and height to remove.
	Percentage bool
	// Scale shrinks the picture proportionally before carving, so that
	// seams are only removed along the axis exceeding the target aspect ratio.
	Scale bool
	// Logger receives progress messages. Nothing is logged when nil.
	Logger *log.Logger
}

// Resize shrinks img to the requested size by removing vertical and
// horizontal seams alternately, so the two kinds of seams blend together.
// Enlarging is not supported. The context is checked between seams.
func (p *Processor) Resize(ctx context.Context, img image.Image) (*image.NRGBA, error) {
	if isNilImage(img) {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	logger := p.logger()
	b := img.Bounds()

	nw, nh, err := p.targetSize(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	if p.Scale && nw < b.Dx() && nh < b.Dy() {
		img = prescale(img, nw, nh)
		logger.Debug("scaled picture", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}

	c, err := New(img)
	if err != nil {
		return nil, err
	}

	var removed int
	for c.Width() > nw || c.Height() > nh {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.Width() > nw {
			if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
				return nil, err
			}
			removed++
		}
		if c.Height() > nh {
			if err := c.RemoveHorizontalSeam(c.FindHorizontalSeam()); err != nil {
				return nil, err
			}
			removed++
		}
		logger.Debug("removed seams", "count", removed, "width", c.Width(), "height", c.Height())
	}
	logger.Info("resized picture",
		"from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"to", fmt.Sprintf("%dx%d", c.Width(), c.Height()),
		"seams", removed,
	)

	return c.Picture(), nil
}

// Process decodes the image from r, resizes it and encodes the result to w.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer, format string) error {
	src, _, err := Decode(r)
	if err != nil {
		return err
	}
	res, err := p.Resize(ctx, src)
	if err != nil {
		return err
	}
	return Encode(w, res, format)
}

// targetSize resolves the requested size against a width x height picture.
func (p *Processor) targetSize(width, height int) (int, int, error) {
	nw, nh := p.NewWidth, p.NewHeight
	if nw < 0 || nh < 0 {
		return 0, 0, fmt.Errorf("%w: negative size %dx%d", ErrInvalidArgument, nw, nh)
	}

	if p.Percentage {
		if nw >= 100 || nh >= 100 {
			return 0, 0, fmt.Errorf("%w: cannot remove 100%% or more of the picture", ErrInvalidArgument)
		}
		nw = width - int(float64(width)*float64(nw)/100)
		nh = height - int(float64(height)*float64(nh)/100)
	} else {
		if nw == 0 {
			nw = width
		}
		if nh == 0 {
			nh = height
		}
	}

	if nw > width || nh > height {
		return 0, 0, fmt.Errorf("%w: %dx%d is larger than the %dx%d picture, enlarging is not supported",
			ErrInvalidArgument, nw, nh, width, height)
	}
	if nw < 1 || nh < 1 {
		return 0, 0, fmt.Errorf("%w: target size %dx%d is empty", ErrInvalidArgument, nw, nh)
	}
	return nw, nh, nil
}

func (p *Processor) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard)
	}
	return p.Logger
}

// prescale resizes img by the larger of the two axis ratios,
// keeping the aspect ratio. One axis then matches its target exactly
// and the other one is left for the carver.
func prescale(img image.Image, nw, nh int) *image.NRGBA {
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	ratio := math.Max(float64(nw)/w, float64(nh)/h)

	sw := utils.Max(int(math.Round(w*ratio)), nw)
	sh := utils.Max(int(math.Round(h*ratio)), nh)

	return imaging.Resize(img, sw, sh, imaging.Lanczos)
}
