package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/bnema/framepick/config"
	"github.com/bnema/framepick/internal/adapter/ffmpeg"
	"github.com/bnema/framepick/internal/domain"
	"github.com/bnema/framepick/internal/infrastructure/logger"
	"github.com/bnema/framepick/internal/port"
	"github.com/bnema/framepick/internal/service"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract frames from a video or a directory of videos",
	Long: `Extract writes selected frames as PNG images. Point it at a single video
or at a directory; a directory gets one output subdirectory per video.`,
	RunE: runExtractCommand,
}

var (
	extractVideoPath string
	extractOutputDir string
	extractStrategy  string
	extractFPS       int
	extractStartTime float64
	extractEndTime   float64
	extractSeed      int64
	extractAllowAny  bool
	extractResetIdx  bool
	extractVerbose   bool
)

func init() {
	extractCmd.Flags().StringVar(&extractVideoPath, "video_path", "", "video file or directory to process")
	extractCmd.Flags().StringVar(&extractOutputDir, "output_dir", "", "directory to write frames into")
	extractCmd.Flags().StringVar(&extractStrategy, "strategy", "all", "selection strategy: all, uniform or fixed_random")
	extractCmd.Flags().IntVar(&extractFPS, "fps", 0, "sampling rate for uniform, frame count for fixed_random")
	extractCmd.Flags().Float64Var(&extractStartTime, "start_time", 0, "start of the selection window in seconds")
	extractCmd.Flags().Float64Var(&extractEndTime, "end_time", 0, "end of the selection window in seconds (0 means the end of the video)")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", 0, "seed for fixed_random (0 derives one from the clock)")
	extractCmd.Flags().BoolVar(&extractAllowAny, "allow_any_extension", false, "do not filter inputs by file extension")
	extractCmd.Flags().BoolVar(&extractResetIdx, "reset_indices", false, "number output frames from zero instead of by source frame index")
	extractCmd.Flags().BoolVar(&extractVerbose, "verbose", false, "enable debug logging")
	_ = extractCmd.MarkFlagRequired("video_path")
	_ = extractCmd.MarkFlagRequired("output_dir")
}

func runExtractCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(extractVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	strategy, err := domain.ParseStrategy(extractStrategy)
	if err != nil {
		return err
	}

	seed := extractSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	files, isDir, err := service.NewWalker(log).Walk(extractVideoPath, extractAllowAny)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No video files found in %s\n", extractVideoPath)
		return nil
	}

	svc := service.NewExtractionService(
		ffmpeg.NewProber(cfg.FFprobeBin, log),
		ffmpeg.NewExtractor(cfg.FFmpegBin, log),
		log,
	)

	summary := svc.ExtractAll(cmd.Context(), files, service.ExtractRequest{
		Strategy:     strategy,
		FPS:          extractFPS,
		Window:       domain.Window{Start: extractStartTime, End: extractEndTime},
		Seed:         seed,
		OutputDir:    extractOutputDir,
		PerVideoDirs: isDir,
		ResetIndices: extractResetIdx,
		Progress:     progressUpdater(),
	})

	fmt.Printf("Extracted %d frames from %d of %d videos\n",
		summary.Extracted, summary.Processed-summary.Failed, summary.Processed)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d videos failed", summary.Failed, summary.Processed)
	}
	return nil
}

// progressUpdater renders one bar per video, restarting whenever a new
// video reports its first frame.
func progressUpdater() port.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(completed, total int) {
		if completed == 1 {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("extracting"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		if bar != nil {
			_ = bar.Set(completed)
		}
	}
}
