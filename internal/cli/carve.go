package cli

import (
	"errors"
	"fmt"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/utils"
	"github.com/spf13/cobra"
)

func newCarveCmd() *cobra.Command {
	var src, dst string

	cmd := &cobra.Command{
		Use:   "carve",
		Short: "Shrink images by removing their lowest energy seams",
		Example: `  seamcarver carve --in input.jpg --out output.png --width 300
  seamcarver carve --in photos/ --out resized/ --width 20 --height 10 --perc
  cat input.png | seamcarver carve --height 200 > output.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			if cfg.Width == 0 && cfg.Height == 0 {
				return errors.New("please provide a width or height for image rescaling")
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			proc := &seamcarver.Processor{
				NewWidth:   cfg.Width,
				NewHeight:  cfg.Height,
				Percentage: cfg.Percentage,
				Scale:      cfg.Scale,
				Logger:     logger,
			}

			p := newProgress(logger)
			if err := carve(ctx, proc, src, dst, cfg.Workers); err != nil {
				logger.Error(utils.DecorateText("resizing image failed", utils.ErrorMessage))
				return err
			}
			if dst != pipeName {
				p.done(utils.DecorateText("resizing done", utils.SuccessMessage), "out", dst)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&src, "in", pipeName, "source image, directory or URL")
	flags.StringVar(&dst, "out", pipeName, "destination image or directory")
	flags.Int("width", 0, "new width")
	flags.Int("height", 0, "new height")
	flags.Bool("perc", false, "reduce the image by the percentage given as width and height")
	flags.Bool("scale", false, "scale the image proportionally before carving")
	flags.Int("conc", 0, fmt.Sprintf("number of files to process concurrently (max %d)", maxWorkers))

	return cmd
}
