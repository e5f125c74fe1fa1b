package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/NeowayLabs/fb"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   `info`,
	Short: `print framebuffer geometry`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			disp, err := openDisplay()
			if err != nil {
				return err
			}
			defer disp.Close()
			printInfo(os.Stdout, disp)
			return nil
		})
	},
}

func printInfo(w io.Writer, disp *fb.Display) {
	fmt.Fprintf(w, "id:             %s\n", disp.Fix.Name())
	fmt.Fprintf(w, "mem:            %d\n", disp.Fix.SmemLen)
	fmt.Fprintf(w, "line length:    %d\n", disp.Fix.LineLength)
	fmt.Fprintf(w, "xres:           %d\n", disp.Var.XRes)
	fmt.Fprintf(w, "yres:           %d\n", disp.Var.YRes)
	fmt.Fprintf(w, "virtual:        %dx%d\n", disp.Var.XResVirtual, disp.Var.YResVirtual)
	fmt.Fprintf(w, "bits per pixel: %d\n", disp.Var.BitsPerPixel)
	fmt.Fprintf(w, "rgb565:         %t\n", disp.Var.IsRGB565())
	fmt.Fprintf(w, "mapped:         %d pixels (%d bytes)\n", disp.Pixels, disp.BufferSize)
}
