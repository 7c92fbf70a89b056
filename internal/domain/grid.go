package domain

import "fmt"

type GoalGrid [][]string

func (g GoalGrid) Rows() int {
	return len(g)
}

func (g GoalGrid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Rectangular reports whether every row has the width of the first row.
func (g GoalGrid) Rectangular() error {
	width := g.Columns()
	for i, row := range g {
		if len(row) != width {
			return fmt.Errorf("row %d has %d cells, expected %d", i, len(row), width)
		}
	}

	return nil
}

type TargetObjectSet struct {
	Polyanets []PlacementObject
	Soloons   []PlacementObject
	Comeths   []PlacementObject
	Empties   []Position
}

func (s TargetObjectSet) Size() int {
	return len(s.Polyanets) + len(s.Soloons) + len(s.Comeths)
}

// Objects returns all placements grouped by kind, polyanets first.
// Polyanets must exist on the remote map before soloons and comeths
// that depend on them, so submission follows this order.
func (s TargetObjectSet) Objects() []PlacementObject {
	objects := make([]PlacementObject, 0, s.Size())
	objects = append(objects, s.Polyanets...)
	objects = append(objects, s.Soloons...)
	objects = append(objects, s.Comeths...)

	return objects
}

// Groups returns the kind-ordered submission stages.
func (s TargetObjectSet) Groups() [][]PlacementObject {
	return [][]PlacementObject{s.Polyanets, s.Soloons, s.Comeths}
}

func (s *TargetObjectSet) Add(obj PlacementObject) {
	switch obj.Kind {
	case KindPolyanet:
		s.Polyanets = append(s.Polyanets, obj)
	case KindSoloon:
		s.Soloons = append(s.Soloons, obj)
	case KindCometh:
		s.Comeths = append(s.Comeths, obj)
	}
}
