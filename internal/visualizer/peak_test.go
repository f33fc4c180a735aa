package visualizer

import (
	"math"
	"testing"
)

func TestPeakAttackIsInstant(t *testing.T) {
	tracker := newPeakTracker()
	if got := tracker.update(0.9); got != 0.9 {
		t.Fatalf("update(0.9) = %v, want 0.9", got)
	}
	if got := tracker.update(1.7); got != 1.7 {
		t.Fatalf("update(1.7) = %v, want 1.7", got)
	}
}

func TestPeakDecayIsGeometric(t *testing.T) {
	tracker := newPeakTracker()
	want := 0.25
	for n := 1; n <= 20; n++ {
		got := tracker.update(0)
		want *= peakDecay
		if math.Abs(float64(got)-want) > 1e-5 {
			t.Fatalf("after %d silent frames peak = %v, want %v", n, got, want)
		}
	}
}

func TestPeakReleaseBlendsFramePeak(t *testing.T) {
	tracker := newPeakTracker()
	tracker.update(1.0)

	got := tracker.update(0.5)
	want := 1.0*peakDecay + 0.5*(1-peakDecay)
	if math.Abs(float64(got)-want) > 1e-6 {
		t.Fatalf("update(0.5) = %v, want %v", got, want)
	}
}

func TestPeakNeverFallsBelowFloor(t *testing.T) {
	tracker := newPeakTracker()
	for i := 0; i < 500; i++ {
		if got := tracker.update(0); got < peakFloor {
			t.Fatalf("frame %d: peak = %v, below floor %v", i, got, peakFloor)
		}
	}
	if tracker.peak != peakFloor {
		t.Fatalf("peak settled at %v, want floor %v", tracker.peak, peakFloor)
	}
}
