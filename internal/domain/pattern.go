package domain

import "strings"

// crossRows is the fixed 11x11 warm-up shape: an X of polyanets with a
// two-cell space margin on every side.
var crossRows = []string{
	"...........",
	"...........",
	"..P.....P..",
	"...P...P...",
	"....P.P....",
	".....P.....",
	"....P.P....",
	"...P...P...",
	"..P.....P..",
	"...........",
	"...........",
}

// CrossPattern expands the cross shape into a goal grid using the
// standard cell vocabulary.
func CrossPattern() GoalGrid {
	grid := make(GoalGrid, 0, len(crossRows))
	for _, row := range crossRows {
		cells := make([]string, 0, len(row))
		for _, mark := range strings.Split(row, "") {
			label := LabelSpace
			if mark == "P" {
				label = LabelPolyanet
			}
			cells = append(cells, label)
		}
		grid = append(grid, cells)
	}

	return grid
}
