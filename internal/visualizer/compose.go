package visualizer

import (
	"math"
	"strings"
)

const (
	clearHome  = "\x1b[2J\x1b[H"
	colorReset = "\x1b[0m"

	barCell     = '█'
	dividerCell = '─'
)

// composeFrame serializes smoothed columns (components in [0, 1]) into a
// TotalRows x NumBars text grid preceded by a clear-screen/home sequence.
// Positive bars grow upward from the center divider, negative bars grow
// downward from it.
func composeFrame(columns []Band) string {
	midRow := TotalRows / 2

	var frame strings.Builder
	frame.Grow(len(clearHome) + TotalRows*(NumBars*16+1))
	frame.WriteString(clearHome)

	for row := 0; row < TotalRows; row++ {
		for _, b := range columns {
			switch {
			case row < midRow:
				posRows := int(math.Round(float64(b.Pos) * float64(midRow)))
				if row >= midRow-posRows {
					frame.WriteString(colorFor(b.Pos))
					frame.WriteRune(barCell)
					frame.WriteString(colorReset)
				} else {
					frame.WriteByte(' ')
				}
			case row == midRow:
				frame.WriteRune(dividerCell)
			default:
				negRows := int(math.Round(float64(b.Neg) * float64(midRow)))
				if row-midRow-1 < negRows {
					frame.WriteString(colorFor(b.Neg))
					frame.WriteRune(barCell)
					frame.WriteString(colorReset)
				} else {
					frame.WriteByte(' ')
				}
			}
		}
		frame.WriteByte('\n')
	}

	return frame.String()
}
