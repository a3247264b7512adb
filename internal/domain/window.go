package domain

// Window is a half-open [Start, End) slice of a video timeline, in seconds.
// End <= 0 means "until the end of the video".
type Window struct {
	Start float64
	End   float64
}

// Resolve clamps the window to [0, duration]. The returned pair may be empty
// (end <= start); callers treat that as "select nothing".
func (w Window) Resolve(duration float64) (start, end float64) {
	start = w.Start
	if start < 0 {
		start = 0
	}
	if start > duration {
		start = duration
	}
	end = w.End
	if end <= 0 || end > duration {
		end = duration
	}
	return start, end
}
