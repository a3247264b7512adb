package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
)

type Strategy string

const (
	StrategyAll         Strategy = "all"
	StrategyUniform     Strategy = "uniform"
	StrategyFixedRandom Strategy = "fixed_random"
)

// ParseStrategy resolves a strategy name case-insensitively. An empty name
// selects StrategyAll, matching the CLI default.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(name)) {
	case "", StrategyAll:
		return StrategyAll, nil
	case StrategyUniform:
		return StrategyUniform, nil
	case StrategyFixedRandom:
		return StrategyFixedRandom, nil
	}
	return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidParameter, name)
}

// FrameTimestamp is one selected frame: its index in the source stream and
// the seek position handed to the decoder.
type FrameTimestamp struct {
	Index   int
	Seconds float64
}

// StrategyRequest is the immutable input to Select.
type StrategyRequest struct {
	Strategy Strategy
	FPS      int // sampling rate for uniform, frame count for fixed_random
	Window   Window
	Seed     int64 // fixed_random draw seed
}

// frameEpsilon absorbs float error when mapping timestamps onto the integer
// frame grid.
const frameEpsilon = 1e-6

func frameIndexAt(seconds, rate float64) int {
	return int(math.Floor(seconds*rate + frameEpsilon))
}

// seekTime is the decode position for a frame: its temporal midpoint, pulled
// forward to the window start when the first frame only partially overlaps
// the window.
func seekTime(index int, rate, windowStart float64) float64 {
	t := (float64(index) + 0.5) / rate
	if t < windowStart {
		return windowStart
	}
	return t
}

// frameRange maps a resolved [start, end) window onto source frame indices,
// clamped to the stream's frame count.
func frameRange(handle VideoHandle, start, end float64) (first, last int) {
	if end <= start {
		return 0, 0
	}
	first = frameIndexAt(start, handle.FrameRate)
	last = frameIndexAt(end, handle.FrameRate)
	if last > handle.FrameCount {
		last = handle.FrameCount
	}
	return first, last
}

// Select computes the frames to extract for the requested strategy. Output is
// strictly ascending with no duplicate indices. An empty or inverted window
// selects nothing; fixed_random treats that as zero available frames and
// fails when a positive count was requested.
func Select(handle VideoHandle, req StrategyRequest) ([]FrameTimestamp, error) {
	switch req.Strategy {
	case StrategyAll:
		return selectAll(handle, req)
	case StrategyUniform:
		return selectUniform(handle, req)
	case StrategyFixedRandom:
		return selectFixedRandom(handle, req)
	}
	return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidParameter, req.Strategy)
}

func selectAll(handle VideoHandle, req StrategyRequest) ([]FrameTimestamp, error) {
	start, end := req.Window.Resolve(handle.Duration)
	first, last := frameRange(handle, start, end)
	if first >= last {
		return nil, nil
	}
	frames := make([]FrameTimestamp, 0, last-first)
	for i := first; i < last; i++ {
		frames = append(frames, FrameTimestamp{Index: i, Seconds: seekTime(i, handle.FrameRate, start)})
	}
	return frames, nil
}

func selectUniform(handle VideoHandle, req StrategyRequest) ([]FrameTimestamp, error) {
	if req.FPS <= 0 {
		return nil, fmt.Errorf("%w: uniform sampling needs a positive fps, got %d", ErrInvalidParameter, req.FPS)
	}
	if float64(req.FPS) > handle.FrameRate {
		return nil, fmt.Errorf("%w: requested %d fps exceeds source rate %.2f", ErrInvalidParameter, req.FPS, handle.FrameRate)
	}
	start, end := req.Window.Resolve(handle.Duration)
	if end <= start {
		return nil, nil
	}
	var frames []FrameTimestamp
	for k := 0; ; k++ {
		t := start + float64(k)/float64(req.FPS)
		if t >= end {
			break
		}
		idx := frameIndexAt(t, handle.FrameRate)
		if idx >= handle.FrameCount {
			break
		}
		// Rounding can land two samples on one frame when the rate divides
		// the source rate unevenly; keep the first.
		if len(frames) > 0 && idx <= frames[len(frames)-1].Index {
			continue
		}
		frames = append(frames, FrameTimestamp{Index: idx, Seconds: t})
	}
	return frames, nil
}

func selectFixedRandom(handle VideoHandle, req StrategyRequest) ([]FrameTimestamp, error) {
	if req.FPS <= 0 {
		return nil, fmt.Errorf("%w: fixed_random needs a positive frame count, got %d", ErrInvalidParameter, req.FPS)
	}
	start, end := req.Window.Resolve(handle.Duration)
	first, last := frameRange(handle, start, end)
	available := last - first
	if req.FPS > available {
		return nil, fmt.Errorf("%w: requested %d frames but only %d available in window", ErrInvalidParameter, req.FPS, available)
	}

	rng := rand.New(rand.NewPCG(uint64(req.Seed), uint64(req.Seed)))
	picks := rng.Perm(available)[:req.FPS]
	sort.Ints(picks)

	frames := make([]FrameTimestamp, 0, len(picks))
	for _, p := range picks {
		idx := first + p
		frames = append(frames, FrameTimestamp{Index: idx, Seconds: seekTime(idx, handle.FrameRate, start)})
	}
	return frames, nil
}
