package visualizer

import (
	"strings"
	"testing"
)

func TestComposeFrameRowFill(t *testing.T) {
	columns := make([]Band, NumBars)
	columns[0] = Band{Pos: 1, Neg: 0.5}
	columns[5] = Band{Pos: 0.1, Neg: 0}

	frame := composeFrame(columns)
	if !strings.HasPrefix(frame, clearHome) {
		t.Fatalf("frame does not start with clear/home sequence")
	}

	lines := frameLines(t, frame)
	midRow := TotalRows / 2

	cell := func(row, col int) rune {
		return []rune(lines[row])[col]
	}

	// Column 0: full positive bar, half negative bar (round(0.5*10) = 5).
	for row := 0; row < midRow; row++ {
		if cell(row, 0) != barCell {
			t.Fatalf("row %d col 0 = %q, want filled", row, cell(row, 0))
		}
	}
	if cell(midRow, 0) != dividerCell {
		t.Fatalf("center row col 0 = %q, want divider", cell(midRow, 0))
	}
	for row := midRow + 1; row <= midRow+5; row++ {
		if cell(row, 0) != barCell {
			t.Fatalf("row %d col 0 = %q, want filled", row, cell(row, 0))
		}
	}
	for row := midRow + 6; row < TotalRows; row++ {
		if cell(row, 0) != ' ' {
			t.Fatalf("row %d col 0 = %q, want blank", row, cell(row, 0))
		}
	}

	// Column 5: round(0.1*10) = 1 row, adjacent to the divider.
	if cell(midRow-1, 5) != barCell {
		t.Fatalf("row above divider col 5 = %q, want filled", cell(midRow-1, 5))
	}
	if cell(midRow-2, 5) != ' ' {
		t.Fatalf("second row above divider col 5 = %q, want blank", cell(midRow-2, 5))
	}

	// Column 1 carries no signal.
	for row := range lines {
		want := ' '
		if row == midRow {
			want = dividerCell
		}
		if cell(row, 1) != want {
			t.Fatalf("row %d col 1 = %q, want %q", row, cell(row, 1), want)
		}
	}
}

func TestComposeFrameColorsFilledCellsOnly(t *testing.T) {
	columns := make([]Band, NumBars)
	columns[0] = Band{Pos: 1, Neg: 1}

	frame := strings.TrimPrefix(composeFrame(columns), clearHome)
	if !strings.Contains(frame, rampColors[4]) {
		t.Fatalf("saturated column did not use the hottest ramp color")
	}
	for _, line := range strings.Split(strings.TrimSuffix(frame, "\n"), "\n") {
		opens := strings.Count(line, "\x1b[38;5;")
		resets := strings.Count(line, colorReset)
		fills := strings.Count(line, string(barCell))
		if opens != fills || resets != fills {
			t.Fatalf("line %q: %d color opens, %d resets, %d filled cells", line, opens, resets, fills)
		}
	}
}
