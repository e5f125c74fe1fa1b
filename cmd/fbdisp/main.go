// Command fbdisp draws on a Linux framebuffer: geometry dumps, solid fills,
// images and an animated flush demo.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/NeowayLabs/fb"
)

// exitRuntime is the status for failures after the device was opened.
// Open failures exit with their fb.Stage (1..6).
const exitRuntime = 10

var (
	devicePath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:          "fbdisp",
	Short:        "fbdisp draws on a linux framebuffer",
	Long:         "fbdisp maps a linux framebuffer device and draws RGB565 pixels on it",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringVarP(&devicePath, `device`, `d`, fb.DefaultPath, `framebuffer device`)
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug logging and error stacks`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run executes fn and terminates the process on failure with a status that
// identifies the failing step.
func run(fn func() error) {
	if fn == nil {
		fatal(errors.New(`nil command function`))
	}
	if err := fn(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintf(os.Stderr, "fbdisp: %s\n", err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	var initErr *fb.InitError
	if errors.As(err, &initErr) {
		return initErr.ExitCode()
	}
	return exitRuntime
}

func openDisplay() (*fb.Display, error) {
	return fb.Open(devicePath, fb.WithLogger(slog.Default()))
}
