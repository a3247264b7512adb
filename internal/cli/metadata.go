package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/framepick/config"
	"github.com/bnema/framepick/internal/adapter/ffmpeg"
	"github.com/bnema/framepick/internal/domain"
	"github.com/bnema/framepick/internal/infrastructure/logger"
	"github.com/bnema/framepick/internal/service"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show video metadata",
	Long:  "Probe videos with ffprobe and print duration, frame rate, resolution, codec and bit rate.",
	RunE:  runMetadataCommand,
}

var (
	metadataVideoPath string
	metadataAllowAny  bool
	metadataResetIdx  bool
	metadataVerbose   bool
)

func init() {
	metadataCmd.Flags().StringVar(&metadataVideoPath, "video_path", "", "video file or directory to probe")
	metadataCmd.Flags().BoolVar(&metadataAllowAny, "allow_any_extension", false, "do not filter inputs by file extension")
	metadataCmd.Flags().BoolVar(&metadataResetIdx, "reset_indices", false, "accepted for flag parity with extract; has no effect here")
	metadataCmd.Flags().BoolVar(&metadataVerbose, "verbose", false, "enable debug logging")
	_ = metadataCmd.MarkFlagRequired("video_path")
}

func runMetadataCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(metadataVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	files, _, err := service.NewWalker(log).Walk(metadataVideoPath, metadataAllowAny)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No video files found in %s\n", metadataVideoPath)
		return nil
	}

	svc := service.NewExtractionService(
		ffmpeg.NewProber(cfg.FFprobeBin, log),
		ffmpeg.NewExtractor(cfg.FFmpegBin, log),
		log,
	)

	handles, failed := svc.ProbeAll(cmd.Context(), files)
	for _, handle := range handles {
		printHandle(handle)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d videos failed", failed, len(files))
	}
	return nil
}

func printHandle(h domain.VideoHandle) {
	fmt.Printf("%s\n", filepath.Base(h.Path))
	fmt.Printf("  Codec:      %s\n", h.Codec)
	fmt.Printf("  Resolution: %dx%d\n", h.Width, h.Height)
	fmt.Printf("  Duration:   %s\n", domain.FormatDuration(h.Duration))
	fmt.Printf("  Frame rate: %s\n", domain.FormatFrameRate(h.FrameRate))
	fmt.Printf("  Frames:     %d\n", h.FrameCount)
	fmt.Printf("  Bit rate:   %s\n", domain.FormatBitrate(h.BitRate))
	fmt.Println()
}
