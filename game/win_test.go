package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func markRow(m *Marks, r int) {
	for c := 0; c < Size; c++ {
		m[r][c] = true
	}
}

func markCol(m *Marks, c int) {
	for r := 0; r < Size; r++ {
		m[r][c] = true
	}
}

func TestEvaluateEmptyCard(t *testing.T) {
	assert := assert.New(t)

	res := Evaluate(NewMarks())

	assert.False(res.Won)
	assert.Equal(0, res.LinesCompleted)
}

func TestEvaluateSingleRow(t *testing.T) {
	assert := assert.New(t)

	for r := 0; r < Size; r++ {
		m := NewMarks()
		markRow(&m, r)

		res := Evaluate(m)

		// Row 2 crosses the FREE space but still counts as exactly one line.
		assert.True(res.Won, "row %d", r)
		assert.Equal(1, res.LinesCompleted, "row %d", r)
	}
}

func TestEvaluateSingleColumn(t *testing.T) {
	assert := assert.New(t)

	for c := 0; c < Size; c++ {
		m := NewMarks()
		markCol(&m, c)

		res := Evaluate(m)

		assert.True(res.Won, "col %d", c)
		assert.Equal(1, res.LinesCompleted, "col %d", c)
	}
}

func TestEvaluateDiagonals(t *testing.T) {
	assert := assert.New(t)

	var main Marks
	for i := 0; i < Size; i++ {
		main[i][i] = true
	}
	res := Evaluate(main)
	assert.True(res.Won)
	assert.Equal(1, res.LinesCompleted)

	var anti Marks
	for i := 0; i < Size; i++ {
		anti[i][Size-1-i] = true
	}
	res = Evaluate(anti)
	assert.True(res.Won)
	assert.Equal(1, res.LinesCompleted)
}

func TestEvaluateFourInARowIsNotAWin(t *testing.T) {
	assert := assert.New(t)

	m := NewMarks()
	for c := 0; c < Size-1; c++ {
		m[0][c] = true
	}

	res := Evaluate(m)

	assert.False(res.Won)
	assert.Equal(0, res.LinesCompleted)
}

func TestEvaluateFullCard(t *testing.T) {
	assert := assert.New(t)

	var m Marks
	for r := 0; r < Size; r++ {
		markRow(&m, r)
	}

	res := Evaluate(m)

	assert.True(res.Won)
	assert.Equal(12, res.LinesCompleted)
}

func TestEvaluateCrossingLines(t *testing.T) {
	assert := assert.New(t)

	m := NewMarks()
	markRow(&m, 2)
	markCol(&m, 2)

	res := Evaluate(m)

	assert.True(res.Won)
	assert.Equal(2, res.LinesCompleted)
}

func TestEvaluateIsPure(t *testing.T) {
	assert := assert.New(t)

	m := NewMarks()
	markRow(&m, 1)

	first := Evaluate(m)
	second := Evaluate(m)

	assert.Equal(first, second)
}

func TestNewMarksPreMarksFreeSpace(t *testing.T) {
	assert := assert.New(t)

	m := NewMarks()

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if r == FreeRow && c == FreeCol {
				assert.True(m[r][c])
			} else {
				assert.False(m[r][c])
			}
		}
	}
}

func TestGridFromRows(t *testing.T) {
	assert := assert.New(t)

	rows := make([][]string, Size)
	for r := range rows {
		rows[r] = make([]string, Size)
		for c := range rows[r] {
			rows[r][c] = "phrase"
		}
	}

	g, err := GridFromRows(rows)
	assert.NoError(err)
	assert.Equal("phrase", g[4][4])

	_, err = GridFromRows(rows[:4])
	assert.Error(err)

	rows[3] = rows[3][:3]
	_, err = GridFromRows(rows)
	assert.Error(err)
}

func TestInBounds(t *testing.T) {
	assert := assert.New(t)

	assert.True(InBounds(0, 0))
	assert.True(InBounds(4, 4))
	assert.False(InBounds(-1, 0))
	assert.False(InBounds(0, 5))
	assert.False(InBounds(5, 2))
}
