package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalGridRectangular(t *testing.T) {
	grid := GoalGrid{
		{"SPACE", "POLYANET"},
		{"SPACE", "SPACE"},
	}

	require.NoError(t, grid.Rectangular())
	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, 2, grid.Columns())
}

func TestGoalGridRectangularRejectsJaggedRows(t *testing.T) {
	grid := GoalGrid{
		{"SPACE", "POLYANET"},
		{"SPACE"},
	}

	err := grid.Rectangular()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 has 1 cells, expected 2")
}

func TestGoalGridEmpty(t *testing.T) {
	var grid GoalGrid

	assert.Equal(t, 0, grid.Rows())
	assert.Equal(t, 0, grid.Columns())
	assert.NoError(t, grid.Rectangular())
}

func TestTargetObjectSetGroupsKeepKindOrder(t *testing.T) {
	var set TargetObjectSet
	set.Add(NewSoloon(Position{Row: 0, Column: 1}, ColorBlue))
	set.Add(NewPolyanet(Position{Row: 0, Column: 0}))
	set.Add(NewCometh(Position{Row: 0, Column: 2}, DirectionUp))
	set.Add(NewPolyanet(Position{Row: 1, Column: 0}))

	require.Equal(t, 4, set.Size())

	objects := set.Objects()
	require.Len(t, objects, 4)
	assert.Equal(t, KindPolyanet, objects[0].Kind)
	assert.Equal(t, KindPolyanet, objects[1].Kind)
	assert.Equal(t, KindSoloon, objects[2].Kind)
	assert.Equal(t, KindCometh, objects[3].Kind)

	groups := set.Groups()
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
	assert.Len(t, groups[2], 1)
}

func TestCrossPatternShape(t *testing.T) {
	grid := CrossPattern()

	require.NoError(t, grid.Rectangular())
	require.Equal(t, 11, grid.Rows())
	require.Equal(t, 11, grid.Columns())

	polyanets := 0
	for r, row := range grid {
		for c, label := range row {
			switch label {
			case LabelPolyanet:
				polyanets++
				onDiagonal := r == c || r+c == 10
				assert.True(t, onDiagonal, "unexpected polyanet at (%d,%d)", r, c)
				assert.GreaterOrEqual(t, r, 2)
				assert.LessOrEqual(t, r, 8)
			case LabelSpace:
			default:
				t.Fatalf("unexpected label %q at (%d,%d)", label, r, c)
			}
		}
	}

	// Seven rows carry the X, the center row holds a single shared cell.
	assert.Equal(t, 13, polyanets)
}

func TestCrossPatternIsSymmetric(t *testing.T) {
	grid := CrossPattern()

	for r, row := range grid {
		for c, label := range row {
			assert.Equal(t, label, grid[r][10-c], "mirror of (%d,%d)", r, c)
			assert.Equal(t, label, grid[10-r][c], "flip of (%d,%d)", r, c)
		}
	}
}
