// Package cli wires the framepick commands together.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "framepick",
	Short: "Extract frames from videos with ffmpeg",
	Long: `Framepick probes videos with ffprobe and pulls individual frames out
with ffmpeg. Frames are chosen by a selection strategy: every frame in a
time window, a fixed rate across it, or a seeded random sample.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	// SIGINT and SIGTERM cancel the command context, which kills any
	// ffmpeg or ffprobe process still running.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(metadataCmd)
}
