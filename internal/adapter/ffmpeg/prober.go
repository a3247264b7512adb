package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/bnema/framepick/internal/domain"
	"github.com/bnema/framepick/internal/infrastructure/logger"
	"github.com/bnema/framepick/internal/port"
)

// Prober reads video metadata through ffprobe.
type Prober struct {
	bin string
	log *zap.Logger
}

// NewProber creates a prober backed by the given ffprobe binary. An empty
// bin falls back to "ffprobe" resolved through PATH.
func NewProber(bin string, log *zap.Logger) *Prober {
	if bin == "" {
		bin = "ffprobe"
	}
	return &Prober{bin: bin, log: log}
}

func (p *Prober) Probe(ctx context.Context, videoPath string) (domain.VideoHandle, error) {
	if err := validatePath(videoPath); err != nil {
		return domain.VideoHandle{}, fmt.Errorf("invalid input path: %w", err)
	}
	if _, err := exec.LookPath(p.bin); err != nil {
		return domain.VideoHandle{}, fmt.Errorf("%w: %s not found in PATH", domain.ErrExternalTool, p.bin)
	}

	p.log.Debug("running ffprobe",
		zap.String("bin", p.bin),
		zap.String("video", logger.SanitizeForLog(videoPath)),
	)

	cmd := exec.CommandContext(ctx, p.bin, probeArgs(videoPath)...)
	output, err := cmd.Output()
	if err != nil {
		return domain.VideoHandle{}, fmt.Errorf("%w: %s failed on %s: %v%s",
			domain.ErrExternalTool, p.bin, videoPath, err, exitDetail(err))
	}

	var probe domain.ProbeResult
	if err := json.Unmarshal(output, &probe); err != nil {
		return domain.VideoHandle{}, fmt.Errorf("%w: unreadable probe output for %s: %v",
			domain.ErrUnsupportedFormat, videoPath, err)
	}

	handle, err := domain.HandleFromProbe(videoPath, &probe)
	if err != nil {
		return domain.VideoHandle{}, err
	}

	p.log.Debug("probed video",
		zap.String("video", logger.SanitizeForLog(videoPath)),
		zap.String("codec", handle.Codec),
		zap.Float64("duration_sec", handle.Duration),
		zap.Float64("frame_rate", handle.FrameRate),
		zap.Int("frame_count", handle.FrameCount),
	)
	return handle, nil
}

func probeArgs(videoPath string) []string {
	return []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		videoPath,
	}
}

var _ port.MetadataProber = (*Prober)(nil)
