package domain

import (
	"path/filepath"
	"strings"
)

// VideoHandle carries the probed facts about one source file. Constructed
// once per video, read-only afterwards.
type VideoHandle struct {
	Path       string
	Duration   float64 // seconds
	FrameRate  float64 // frames per second
	FrameCount int
	Width      int
	Height     int
	Codec      string
	BitRate    int64 // bits per second, 0 when the container omits it
}

var videoExts = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true,
}

func SupportedExtension(path string) bool {
	return videoExts[strings.ToLower(filepath.Ext(path))]
}

// Stem returns the file name without directory or extension, used to name
// per-video output subdirectories in batch runs.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
