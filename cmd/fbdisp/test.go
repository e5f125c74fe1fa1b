package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/NeowayLabs/fb"
)

var testPause time.Duration

func init() {
	testCmd.Flags().DurationVar(&testPause, `pause`, 2*time.Second, `time each pattern stays on screen`)
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   `test`,
	Short: `cycle through solid colors and a filled rectangle`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			disp, err := openDisplay()
			if err != nil {
				return err
			}
			defer disp.Close()
			testPattern(disp, testPause, time.Sleep)
			return nil
		})
	},
}

type patternStep struct {
	name  string
	color fb.RGB565
	fill  []int // x1 y1 x2 y2, full screen when nil
}

var patternSteps = []patternStep{
	{name: `black`, color: fb.Black},
	{name: `red`, color: fb.NewRGB565(0x1F, 0, 0)},
	{name: `green`, color: fb.NewRGB565(0, 0x3F, 0)},
	{name: `blue`, color: fb.NewRGB565(0, 0, 0x1F)},
	{name: `white`, color: fb.NewRGB565(0x1F, 0x3F, 0x1F)},
	{name: `yellow rectangle`, color: fb.NewRGB565(0x1F, 0x3F, 0), fill: []int{10, 10, 310, 230}},
}

func testPattern(disp *fb.Display, pause time.Duration, sleep func(time.Duration)) {
	for _, step := range patternSteps {
		slog.Info("pattern", "step", step.name)
		if step.fill == nil {
			disp.Clear(step.color)
		} else {
			disp.Fill(step.color, step.fill[0], step.fill[1], step.fill[2], step.fill[3])
		}
		sleep(pause)
	}
}
