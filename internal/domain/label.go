package domain

import "strings"

const (
	LabelSpace    = "SPACE"
	LabelPolyanet = "POLYANET"

	soloonLabelSuffix = "_SOLOON"
	comethLabelSuffix = "_COMETH"
)

type CellClass string

const (
	CellObject  CellClass = "object"
	CellSpace   CellClass = "space"
	CellUnknown CellClass = "unknown"
)

// ParseCellLabel maps one goal-grid label to the object that belongs at pos.
// Labels outside the vocabulary classify as CellUnknown and carry no object.
func ParseCellLabel(label string, pos Position) (PlacementObject, CellClass) {
	switch {
	case label == LabelSpace:
		return PlacementObject{}, CellSpace
	case label == LabelPolyanet:
		return NewPolyanet(pos), CellObject
	case strings.HasSuffix(label, soloonLabelSuffix):
		color := SoloonColor(strings.ToLower(strings.TrimSuffix(label, soloonLabelSuffix)))
		if !color.Valid() {
			return PlacementObject{}, CellUnknown
		}
		return NewSoloon(pos, color), CellObject
	case strings.HasSuffix(label, comethLabelSuffix):
		direction := ComethDirection(strings.ToLower(strings.TrimSuffix(label, comethLabelSuffix)))
		if !direction.Valid() {
			return PlacementObject{}, CellUnknown
		}
		return NewCometh(pos, direction), CellObject
	default:
		return PlacementObject{}, CellUnknown
	}
}

func (o PlacementObject) Label() string {
	switch o.Kind {
	case KindPolyanet:
		return LabelPolyanet
	case KindSoloon:
		return strings.ToUpper(string(o.Color)) + soloonLabelSuffix
	case KindCometh:
		return strings.ToUpper(string(o.Direction)) + comethLabelSuffix
	default:
		return LabelSpace
	}
}
