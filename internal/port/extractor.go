package port

import (
	"context"

	"github.com/bnema/framepick/internal/domain"
)

// ProgressFunc is called after each written frame with the running count.
type ProgressFunc func(completed, total int)

type ExtractOptions struct {
	OutputDir    string
	ResetIndices bool
	Progress     ProgressFunc
}

type FrameExtractor interface {
	Extract(ctx context.Context, handle domain.VideoHandle, frames []domain.FrameTimestamp, opts ExtractOptions) (domain.ExtractionResult, error)
}
