package domain

import "fmt"

const framePattern = "frame_%06d.png"

// FrameFileName returns the output file name for a frame number. The width
// is fixed so listings sort in extraction order.
func FrameFileName(number int) string {
	return fmt.Sprintf(framePattern, number)
}

// ExtractedFrame is one written output file and the number used in its name.
type ExtractedFrame struct {
	Number int
	Path   string
}

// ExtractionResult lists the files written for one video, in selection order.
type ExtractionResult struct {
	Frames []ExtractedFrame
}

func (r ExtractionResult) Count() int {
	return len(r.Frames)
}
