package main

import (
	"strconv"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/NeowayLabs/fb/screen"
)

var blankLevels = map[string]int{
	`unblank`:   screen.BlankUnblank,
	`normal`:    screen.BlankNormal,
	`vsync`:     screen.BlankVSync,
	`hsync`:     screen.BlankHSync,
	`powerdown`: screen.BlankPowerdown,
}

func init() {
	rootCmd.AddCommand(blankCmd)
}

var blankCmd = &cobra.Command{
	Use:   `blank <unblank|normal|vsync|hsync|powerdown|0-4>`,
	Short: `set the display blanking level`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			level, err := parseBlank(args[0])
			if err != nil {
				return err
			}
			disp, err := openDisplay()
			if err != nil {
				return err
			}
			defer disp.Close()
			return disp.Blank(level)
		})
	},
}

func parseBlank(s string) (int, error) {
	if level, ok := blankLevels[s]; ok {
		return level, nil
	}
	level, err := strconv.Atoi(s)
	if err != nil || level < screen.BlankUnblank || level > screen.BlankPowerdown {
		return 0, errors.Errorf("invalid blank level %q", s)
	}
	return level, nil
}
