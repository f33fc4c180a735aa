package visualizer

import (
	"io"
	"time"
)

const (
	// TotalRows is the height of a rendered frame, center divider included.
	TotalRows = 21

	// blendWeight is the per-frame exponential smoothing factor. Flicker
	// suppression is coupled to the frame cadence: changing FrameDelay
	// changes perceived responsiveness without touching this constant.
	blendWeight = 0.65
)

// FrameDelay is the fixed pause between rendered frames. It paces the
// display as a visual approximation of playback; it is not synchronized
// with audio output or decode throughput.
const FrameDelay = 33 * time.Millisecond

// Renderer turns successive mono sample buffers into full-screen bipolar
// bar frames written to out. It owns the adaptive peak and the previous
// frame's smoothed columns; a single caller must drive it.
type Renderer struct {
	tracker peakTracker
	prev    []Band
	out     io.Writer
}

// New returns a Renderer writing frames to out.
func New(out io.Writer) *Renderer {
	return &Renderer{tracker: newPeakTracker(), out: out}
}

// Render draws one frame from samples, normalized mono values in [-1, 1].
// An empty buffer is a no-op: nothing is written and no state changes.
func (r *Renderer) Render(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	bands, framePeak := bandLevels(samples)
	peak := r.tracker.update(framePeak)

	// First call, or a changed column count: blend up from silence rather
	// than against stale state.
	if len(r.prev) != NumBars {
		r.prev = make([]Band, NumBars)
	}

	for i, b := range bands {
		r.prev[i] = Band{
			Pos: blendWeight*clamp01(b.Pos/peak) + (1-blendWeight)*r.prev[i].Pos,
			Neg: blendWeight*clamp01(b.Neg/peak) + (1-blendWeight)*r.prev[i].Neg,
		}
	}

	_, err := io.WriteString(r.out, composeFrame(r.prev))
	return err
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
