package game

// Result reports the outcome of evaluating a selection matrix.
type Result struct {
	Won            bool `json:"won"`
	LinesCompleted int  `json:"lines_completed"`
}

// Evaluate checks the 12 win lines of a card: 5 rows, 5 columns and the
// two diagonals. All lines are tested rather than stopping at the first
// complete one, so callers can score multiple simultaneous completions.
// Pure function, safe to re-run on every mark.
func Evaluate(m Marks) Result {
	lines := 0

	for r := 0; r < Size; r++ {
		complete := true
		for c := 0; c < Size; c++ {
			if !m[r][c] {
				complete = false
				break
			}
		}
		if complete {
			lines++
		}
	}

	for c := 0; c < Size; c++ {
		complete := true
		for r := 0; r < Size; r++ {
			if !m[r][c] {
				complete = false
				break
			}
		}
		if complete {
			lines++
		}
	}

	main, anti := true, true
	for i := 0; i < Size; i++ {
		if !m[i][i] {
			main = false
		}
		if !m[i][Size-1-i] {
			anti = false
		}
	}
	if main {
		lines++
	}
	if anti {
		lines++
	}

	return Result{Won: lines >= 1, LinesCompleted: lines}
}
