package main

import (
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/NeowayLabs/fb"
)

var (
	showStretch bool
	showHold    time.Duration
)

func init() {
	showCmd.Flags().BoolVar(&showStretch, `stretch`, false, `ignore the aspect ratio`)
	showCmd.Flags().DurationVar(&showHold, `hold`, 0, `wait before exiting`)
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   `show <image>`,
	Short: `scale an image onto the screen`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			img, err := decodeImage(args[0])
			if err != nil {
				return err
			}
			disp, err := openDisplay()
			if err != nil {
				return err
			}
			defer disp.Close()
			showImage(disp, img, showStretch)
			time.Sleep(showHold)
			return nil
		})
	},
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return img, nil
}

func showImage(disp *fb.Display, img image.Image, stretch bool) {
	dst := disp.Bounds()
	if !stretch {
		dst = fitRect(img.Bounds().Size(), dst)
		disp.Clear(fb.Black)
	}
	xdraw.ApproxBiLinear.Scale(disp, dst, img, img.Bounds(), draw.Src, nil)
}

// fitRect centers the largest rectangle with the aspect ratio of src inside
// bounds.
func fitRect(src image.Point, bounds image.Rectangle) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 {
		return image.Rectangle{}
	}
	w, h := bounds.Dx(), bounds.Dy()
	if w*src.Y > h*src.X {
		w = h * src.X / src.Y
	} else {
		h = w * src.Y / src.X
	}
	origin := bounds.Min.Add(image.Pt((bounds.Dx()-w)/2, (bounds.Dy()-h)/2))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}
