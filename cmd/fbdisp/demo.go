package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/NeowayLabs/fb/demo"
	"github.com/NeowayLabs/fb/flush"
)

var demoOpts = struct {
	refresh time.Duration
	latency time.Duration
	vsync   bool
	shapes  int
	frames  int
	seed    int64
}{}

func init() {
	f := demoCmd.Flags()
	f.DurationVar(&demoOpts.refresh, `refresh`, flush.DefaultRefresh, `renderer tick period`)
	f.DurationVar(&demoOpts.latency, `latency`, flush.DefaultRefresh/2, `simulated flush latency`)
	f.BoolVar(&demoOpts.vsync, `vsync`, false, `wait for vertical retrace after each flush`)
	f.IntVar(&demoOpts.shapes, `shapes`, 24, `number of moving shapes`)
	f.IntVar(&demoOpts.frames, `frames`, 0, `stop after this many frames (0 runs until interrupted)`)
	f.Int64Var(&demoOpts.seed, `seed`, 1, `scene random seed`)
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   `demo`,
	Short: `animate a stress scene through the flush callback`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			disp, err := openDisplay()
			if err != nil {
				return err
			}
			defer disp.Close()

			logger := slog.Default()
			adapter := flush.NewAdapter(logger)
			adapter.Latency = demoOpts.latency
			adapter.VSync = demoOpts.vsync

			panel := flush.NewPanel(disp.Width(), disp.Height(), logger)
			panel.SetUserData(disp)
			panel.SetFlushCallback(adapter.Callback())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := &demo.Runner{
				Scene:   demo.NewStress(disp.Width(), disp.Height(), demoOpts.shapes, demoOpts.seed),
				Out:     panel,
				Refresh: demoOpts.refresh,
				Frames:  demoOpts.frames,
				Logger:  logger,
			}
			return r.Run(ctx)
		})
	},
}
