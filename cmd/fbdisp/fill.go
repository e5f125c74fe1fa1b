package main

import (
	"strconv"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fillCmd)
}

var fillCmd = &cobra.Command{
	Use:   `fill <color> [x1 y1 x2 y2]`,
	Short: `fill the screen or a rectangle with a color`,
	Long: `fill the screen or a rectangle with a color

    <color>    black, white, red, green, blue, yellow,
               a RGB565 value (0xf800, f800) or a RGB888 value
               (#rrggbb, rrggbb)
    x1 y1 x2 y2
               corners of the rectangle, in any order, clamped to the screen`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 5 {
			return errors.Errorf("want 1 or 5 arguments, got %d", len(args))
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			var rect []int
			if len(args) == 5 {
				if rect, err = parseInts(args[1:]); err != nil {
					return err
				}
			}

			disp, err := openDisplay()
			if err != nil {
				return err
			}
			defer disp.Close()
			if rect == nil {
				disp.Clear(c)
				return nil
			}
			disp.Fill(c, rect[0], rect[1], rect[2], rect[3])
			return nil
		})
	},
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Errorf("invalid coordinate %q", a)
		}
		out[i] = v
	}
	return out, nil
}
