package cli

import (
	"github.com/esimov/seamcarver"
	"github.com/spf13/cobra"
)

func newEnergyCmd() *cobra.Command {
	var src, dst string

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Render the energy map of an image as a grayscale image",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			img, err := loadImage(src)
			if err != nil {
				return err
			}
			c, err := seamcarver.New(img)
			if err != nil {
				return err
			}
			if err := saveImage(seamcarver.EnergyImage(c), dst); err != nil {
				return err
			}
			if dst != pipeName {
				p.done("energy map saved", "out", dst)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&src, "in", pipeName, "source image or URL")
	flags.StringVar(&dst, "out", pipeName, "destination image")

	return cmd
}
