package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bnema/framepick/internal/domain"
	"github.com/bnema/framepick/internal/infrastructure/logger"
	"github.com/bnema/framepick/internal/port"
)

// Extractor writes selected frames to disk through ffmpeg, one seek per
// frame. Fast input seeking (-ss before -i) keeps a single grab cheap even
// deep into long videos.
type Extractor struct {
	bin string
	log *zap.Logger
}

// NewExtractor creates an extractor backed by the given ffmpeg binary. An
// empty bin falls back to "ffmpeg" resolved through PATH.
func NewExtractor(bin string, log *zap.Logger) *Extractor {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &Extractor{bin: bin, log: log}
}

func (e *Extractor) Extract(ctx context.Context, handle domain.VideoHandle, frames []domain.FrameTimestamp, opts port.ExtractOptions) (domain.ExtractionResult, error) {
	var result domain.ExtractionResult

	if err := validatePath(handle.Path); err != nil {
		return result, fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(opts.OutputDir); err != nil {
		return result, fmt.Errorf("invalid output directory: %w", err)
	}
	if err := ensureDir(opts.OutputDir); err != nil {
		return result, err
	}
	if len(frames) == 0 {
		return result, nil
	}
	if _, err := exec.LookPath(e.bin); err != nil {
		return result, fmt.Errorf("%w: %s not found in PATH", domain.ErrExternalTool, e.bin)
	}

	e.log.Debug("extracting frames",
		zap.String("video", logger.SanitizeForLog(handle.Path)),
		zap.Int("count", len(frames)),
		zap.String("output_dir", logger.SanitizeForLog(opts.OutputDir)),
	)

	for i, frame := range frames {
		number := frame.Index
		if opts.ResetIndices {
			number = i
		}
		outPath := filepath.Join(opts.OutputDir, domain.FrameFileName(number))

		cmd := exec.CommandContext(ctx, e.bin, frameArgs(handle.Path, frame.Seconds, outPath)...)
		if output, err := cmd.CombinedOutput(); err != nil {
			return result, fmt.Errorf("%w: %s failed on frame %d of %s: %v: %s",
				domain.ErrExternalTool, e.bin, frame.Index, handle.Path, err,
				strings.TrimSpace(string(output)))
		}

		result.Frames = append(result.Frames, domain.ExtractedFrame{Number: number, Path: outPath})
		if opts.Progress != nil {
			opts.Progress(i+1, len(frames))
		}
	}

	return result, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output path %s exists and is not a directory", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

func frameArgs(inputPath string, seconds float64, outputPath string) []string {
	return []string{
		"-v", "error",
		"-ss", strconv.FormatFloat(seconds, 'f', 6, 64),
		"-i", inputPath,
		"-frames:v", "1",
		"-y",
		outputPath,
	}
}

var _ port.FrameExtractor = (*Extractor)(nil)
