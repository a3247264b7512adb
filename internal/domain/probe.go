package domain

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
)

type ProbeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	BitRate    string `json:"bit_rate"`
}

type ProbeStream struct {
	Index        int    `json:"index"`
	CodecType    string `json:"codec_type"`
	CodecName    string `json:"codec_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
	Duration     string `json:"duration"`
	NbFrames     string `json:"nb_frames"`
	BitRate      string `json:"bit_rate"`
}

type ProbeResult struct {
	Format  ProbeFormat   `json:"format"`
	Streams []ProbeStream `json:"streams"`
}

const (
	oneMegabitPerSec = 1000000
	oneKilobitPerSec = 1000
)

func (p *ProbeResult) VideoStream() *ProbeStream {
	for i := range p.Streams {
		if p.Streams[i].CodecType == "video" {
			return &p.Streams[i]
		}
	}
	return nil
}

func HandleFromProbe(path string, probe *ProbeResult) (VideoHandle, error) {
	vs := probe.VideoStream()
	if vs == nil {
		return VideoHandle{}, fmt.Errorf("%w: no video stream in %s", ErrUnsupportedFormat, filepath.Base(path))
	}

	fps := ParseFrameRate(vs.AvgFrameRate)
	if fps == 0 {
		fps = ParseFrameRate(vs.RFrameRate)
	}

	duration := ParseDuration(vs.Duration)
	if duration == 0 {
		duration = ParseDuration(probe.Format.Duration)
	}

	if fps <= 0 || duration <= 0 {
		return VideoHandle{}, fmt.Errorf("%w: unusable stream timing in %s (rate %q, duration %q)",
			ErrUnsupportedFormat, filepath.Base(path), vs.AvgFrameRate, vs.Duration)
	}

	frames := int(parseLong(vs.NbFrames))
	if frames <= 0 {
		frames = int(math.Floor(duration*fps + frameEpsilon))
	}

	bitRate := parseLong(vs.BitRate)
	if bitRate == 0 {
		bitRate = parseLong(probe.Format.BitRate)
	}

	return VideoHandle{
		Path:       path,
		Duration:   duration,
		FrameRate:  fps,
		FrameCount: frames,
		Width:      vs.Width,
		Height:     vs.Height,
		Codec:      vs.CodecName,
		BitRate:    bitRate,
	}, nil
}

func ParseFrameRate(fraction string) float64 {
	if fraction == "" || fraction == "0/0" {
		return 0
	}
	var num, den int
	if _, err := fmt.Sscanf(fraction, "%d/%d", &num, &den); err == nil && den > 0 {
		return float64(num) / float64(den)
	}
	return 0
}

func ParseDuration(durationStr string) float64 {
	if durationStr == "" || durationStr == "N/A" {
		return 0
	}
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0
	}
	return duration
}

func parseLong(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "0:00"
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

func FormatBitrate(bitsPerSec int64) string {
	if bitsPerSec <= 0 {
		return "n/a"
	}
	rate := float64(bitsPerSec)
	if rate >= oneMegabitPerSec {
		return fmt.Sprintf("%.1f Mbps", rate/oneMegabitPerSec)
	}
	if rate >= oneKilobitPerSec {
		return fmt.Sprintf("%.1f Kbps", rate/oneKilobitPerSec)
	}
	return fmt.Sprintf("%d bps", bitsPerSec)
}

func FormatFrameRate(fps float64) string {
	if fps <= 0 {
		return "n/a"
	}
	if fps == math.Floor(fps) {
		return fmt.Sprintf("%.0f FPS", fps)
	}
	return fmt.Sprintf("%.2f FPS", fps)
}
