package game

import "fmt"

// Size is the fixed edge length of a bingo card.
const Size = 5

// FreeRow/FreeCol locate the FREE space at the center of the card.
const (
	FreeRow = 2
	FreeCol = 2
)

// Grid is a player's card: a 5x5 matrix of phrases.
type Grid [Size][Size]string

// Marks tracks which cells a player has selected.
type Marks [Size][Size]bool

// NewMarks returns a fresh selection matrix with the FREE space pre-marked.
func NewMarks() Marks {
	var m Marks
	m[FreeRow][FreeCol] = true
	return m
}

// InBounds reports whether (row, col) addresses a cell on the card.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// GridFromRows converts a parsed 2D slice into a Grid, validating its shape.
func GridFromRows(rows [][]string) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, fmt.Errorf("grid must have %d rows, got %d", Size, len(rows))
	}
	for i, row := range rows {
		if len(row) != Size {
			return g, fmt.Errorf("grid row %d must have %d cells, got %d", i, Size, len(row))
		}
		copy(g[i][:], row)
	}
	return g, nil
}
