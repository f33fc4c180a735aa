package visualizer

// NumBars is the number of visual columns in a rendered frame.
const NumBars = 64

// Band holds the aggregated amplitude of one column, split by polarity.
// Both components are >= 0; Neg carries the magnitude of samples below zero.
type Band struct {
	Pos float32
	Neg float32
}

// bandLevels partitions samples into NumBars contiguous chunks and computes
// an amplitude level per chunk and polarity. Each level weights the chunk's
// peak magnitude against its mean (0.75/0.25): pure peak makes the display
// jumpy, pure mean hides transients. Zero samples count for neither side,
// and chunks past the end of a short buffer stay at (0, 0). The second
// return value is the largest level seen anywhere in the frame.
func bandLevels(samples []float32) ([NumBars]Band, float32) {
	var bands [NumBars]Band
	var framePeak float32

	chunkSize := (len(samples) + NumBars - 1) / NumBars
	for i := range bands {
		start := i * chunkSize
		if start >= len(samples) {
			continue
		}
		end := start + chunkSize
		if end > len(samples) {
			end = len(samples)
		}

		var posPeak, posSum, negPeak, negSum float32
		var posCount, negCount int
		for _, s := range samples[start:end] {
			switch {
			case s > 0:
				if s > posPeak {
					posPeak = s
				}
				posSum += s
				posCount++
			case s < 0:
				m := -s
				if m > negPeak {
					negPeak = m
				}
				negSum += m
				negCount++
			}
		}

		var b Band
		if posCount > 0 {
			b.Pos = 0.75*posPeak + 0.25*(posSum/float32(posCount))
		}
		if negCount > 0 {
			b.Neg = 0.75*negPeak + 0.25*(negSum/float32(negCount))
		}
		if b.Pos > framePeak {
			framePeak = b.Pos
		}
		if b.Neg > framePeak {
			framePeak = b.Neg
		}
		bands[i] = b
	}

	return bands, framePeak
}
