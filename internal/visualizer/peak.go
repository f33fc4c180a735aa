package visualizer

const (
	peakDecay = 0.92
	peakFloor = 1e-3
)

// peakTracker keeps the adaptive reference amplitude used to normalize band
// levels: instant attack on loud frames so the display never clips silently,
// slow release on quiet ones so low-level detail zooms in gradually without
// making silence look loud.
type peakTracker struct {
	peak float32
}

func newPeakTracker() peakTracker {
	return peakTracker{peak: 0.25}
}

// update folds one frame's peak into the running reference and returns the
// normalization denominator. The stored peak never drops below peakFloor,
// which keeps the division safe during near-silence.
func (t *peakTracker) update(framePeak float32) float32 {
	if framePeak > t.peak {
		t.peak = framePeak
	} else {
		t.peak = t.peak*peakDecay + framePeak*(1-peakDecay)
		if t.peak < peakFloor {
			t.peak = peakFloor
		}
	}
	return t.peak
}
