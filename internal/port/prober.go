package port

import (
	"context"

	"github.com/bnema/framepick/internal/domain"
)

type MetadataProber interface {
	Probe(ctx context.Context, videoPath string) (domain.VideoHandle, error)
}
