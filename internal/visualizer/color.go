package visualizer

import "math"

// Five-step cool-to-hot ramp over xterm-256 colors. The palette and bucket
// count are fixed; there is no configuration surface.
var (
	rampThresholds = [4]float32{0.2, 0.4, 0.6, 0.8}
	rampColors     = [5]string{
		"\x1b[38;5;39m",  // teal
		"\x1b[38;5;48m",  // green
		"\x1b[38;5;190m", // yellow
		"\x1b[38;5;208m", // orange
		"\x1b[38;5;196m", // red
	}
)

// colorFor picks the escape sequence for a normalized level in [0, 1]. The
// exponent compresses the scale so mid-range levels aren't under-represented
// by a linear bucket mapping.
func colorFor(level float32) string {
	scaled := float32(math.Pow(float64(level), 0.6))
	for i, threshold := range rampThresholds {
		if scaled < threshold {
			return rampColors[i]
		}
	}
	return rampColors[len(rampColors)-1]
}
