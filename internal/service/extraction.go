package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/framepick/internal/domain"
	"github.com/bnema/framepick/internal/infrastructure/logger"
	"github.com/bnema/framepick/internal/port"
)

// ExtractionService drives frame extraction over one or more videos. A
// failing video is logged and skipped so the rest of a batch still runs.
type ExtractionService struct {
	prober    port.MetadataProber
	extractor port.FrameExtractor
	log       *zap.Logger
}

func NewExtractionService(prober port.MetadataProber, extractor port.FrameExtractor, log *zap.Logger) *ExtractionService {
	return &ExtractionService{
		prober:    prober,
		extractor: extractor,
		log:       log,
	}
}

// ExtractRequest carries the selection and output settings shared by every
// video in a run.
type ExtractRequest struct {
	Strategy     domain.Strategy
	FPS          int
	Window       domain.Window
	Seed         int64
	OutputDir    string
	PerVideoDirs bool
	ResetIndices bool
	Progress     port.ProgressFunc
}

// BatchSummary reports what a run did: videos attempted, frames written,
// and videos that failed.
type BatchSummary struct {
	Processed int
	Extracted int
	Failed    int
}

// ExtractAll runs the request against every path in order. Frames from a
// video that later fails are not counted.
func (s *ExtractionService) ExtractAll(ctx context.Context, paths []string, req ExtractRequest) BatchSummary {
	log := s.log.With(zap.String("run_id", uuid.NewString()))

	var summary BatchSummary
	for _, path := range paths {
		summary.Processed++

		result, err := s.extractOne(ctx, log, path, req)
		if err != nil {
			log.Error("extraction failed",
				zap.String("video", logger.SanitizeForLog(path)),
				zap.Error(err))
			summary.Failed++
			continue
		}
		summary.Extracted += result.Count()
	}
	return summary
}

func (s *ExtractionService) extractOne(ctx context.Context, log *zap.Logger, path string, req ExtractRequest) (domain.ExtractionResult, error) {
	var result domain.ExtractionResult

	if req.Window.Start < 0 || req.Window.End < 0 {
		return result, fmt.Errorf("%w: start and end times must not be negative", domain.ErrInvalidParameter)
	}

	handle, err := s.prober.Probe(ctx, path)
	if err != nil {
		return result, err
	}

	frames, err := domain.Select(handle, domain.StrategyRequest{
		Strategy: req.Strategy,
		FPS:      req.FPS,
		Window:   req.Window,
		Seed:     req.Seed,
	})
	if err != nil {
		return result, err
	}
	if len(frames) == 0 {
		log.Warn("no frames selected",
			zap.String("video", logger.SanitizeForLog(path)),
			zap.Float64("start", req.Window.Start),
			zap.Float64("end", req.Window.End))
		return result, nil
	}

	outDir := req.OutputDir
	if req.PerVideoDirs {
		outDir = filepath.Join(req.OutputDir, domain.Stem(path))
	}

	result, err = s.extractor.Extract(ctx, handle, frames, port.ExtractOptions{
		OutputDir:    outDir,
		ResetIndices: req.ResetIndices,
		Progress:     req.Progress,
	})
	if err != nil {
		return result, err
	}

	log.Info("frames extracted",
		zap.String("video", logger.SanitizeForLog(path)),
		zap.Int("frames", result.Count()),
		zap.String("output_dir", logger.SanitizeForLog(outDir)))
	return result, nil
}

// ProbeAll collects metadata for every path, returning the handles that
// probed cleanly and the number that did not.
func (s *ExtractionService) ProbeAll(ctx context.Context, paths []string) ([]domain.VideoHandle, int) {
	var handles []domain.VideoHandle
	failed := 0
	for _, path := range paths {
		handle, err := s.prober.Probe(ctx, path)
		if err != nil {
			s.log.Error("probe failed",
				zap.String("video", logger.SanitizeForLog(path)),
				zap.Error(err))
			failed++
			continue
		}
		handles = append(handles, handle)
	}
	return handles, failed
}
