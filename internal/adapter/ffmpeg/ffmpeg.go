// Package ffmpeg shells out to the ffmpeg and ffprobe binaries. Both
// adapters treat the tools as an opaque process boundary: paths and seek
// positions in, JSON or image files out.
package ffmpeg

import (
	"errors"
	"os/exec"
	"strings"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains invalid characters")
)

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	return nil
}

// exitDetail pulls captured stderr out of an exec exit error, for error
// messages built from cmd.Output failures.
func exitDetail(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return ": " + strings.TrimSpace(string(exitErr.Stderr))
	}
	return ""
}
