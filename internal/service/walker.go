package service

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bnema/framepick/internal/domain"
	"github.com/bnema/framepick/internal/infrastructure/logger"
)

// Walker resolves an input path into the list of videos to process.
type Walker struct {
	log *zap.Logger
}

func NewWalker(log *zap.Logger) *Walker {
	return &Walker{log: log}
}

// Walk expands path into video files. A single file must carry a supported
// extension unless allowAny is set. A directory yields its direct children
// in name order, skipping subdirectories and unsupported files. The second
// return reports whether path named a directory.
func (w *Walker) Walk(path string, allowAny bool) ([]string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("cannot access %s: %w", path, err)
	}

	if !info.IsDir() {
		if !allowAny && !domain.SupportedExtension(path) {
			return nil, false, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
		}
		return []string{path}, false, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, true, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		child := filepath.Join(path, entry.Name())
		if !allowAny && !domain.SupportedExtension(child) {
			w.log.Warn("skipping unsupported file",
				zap.String("file", logger.SanitizeForLog(child)))
			continue
		}
		files = append(files, child)
	}
	return files, true, nil
}
