package cli

import (
	"encoding/json"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/utils"
	"github.com/spf13/cobra"
)

// seamOutput is the JSON document printed by the seam command.
type seamOutput struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Orientation string          `json:"orientation"`
	Seam        seamcarver.Seam `json:"seam"`
	Energy      float64         `json:"energy"`
}

func newSeamCmd() *cobra.Command {
	var (
		src, overlay string
		horizontal   bool
	)

	cmd := &cobra.Command{
		Use:   "seam",
		Short: "Print the lowest energy seam of an image as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			img, err := loadImage(src)
			if err != nil {
				return err
			}
			c, err := seamcarver.New(img)
			if err != nil {
				return err
			}

			out := seamOutput{Width: c.Width(), Height: c.Height(), Orientation: "vertical"}
			if horizontal {
				out.Orientation = "horizontal"
				out.Seam = c.FindHorizontalSeam()
			} else {
				out.Seam = c.FindVerticalSeam()
			}
			for i, v := range out.Seam {
				x, y := v, i
				if horizontal {
					x, y = i, v
				}
				e, err := c.Energy(x, y)
				if err != nil {
					return err
				}
				out.Energy += e
			}
			logger.Debug("seam found", "orientation", out.Orientation, "energy", out.Energy)

			if overlay != "" {
				col, err := utils.HexToRGBA(cfg.SeamColor)
				if err != nil {
					return err
				}
				if err := saveImage(seamcarver.DrawSeam(img, out.Seam, horizontal, col), overlay); err != nil {
					return err
				}
				logger.Info("seam overlay saved", "file", overlay)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&src, "in", pipeName, "source image or URL")
	flags.StringVar(&overlay, "out", "", "write the image with the seam drawn over it")
	flags.BoolVar(&horizontal, "horizontal", false, "find a horizontal seam instead of a vertical one")
	flags.String("color", "#ff0000", "seam color used for the overlay")

	return cmd
}
