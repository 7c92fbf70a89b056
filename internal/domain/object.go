package domain

import (
	"fmt"
	"strings"
)

type ObjectKind string
type SoloonColor string
type ComethDirection string

const (
	KindPolyanet ObjectKind = "polyanet"
	KindSoloon   ObjectKind = "soloon"
	KindCometh   ObjectKind = "cometh"
)

const (
	ColorWhite  SoloonColor = "white"
	ColorBlue   SoloonColor = "blue"
	ColorRed    SoloonColor = "red"
	ColorPurple SoloonColor = "purple"
)

const (
	DirectionUp    ComethDirection = "up"
	DirectionDown  ComethDirection = "down"
	DirectionLeft  ComethDirection = "left"
	DirectionRight ComethDirection = "right"
)

func (k ObjectKind) Valid() bool {
	switch k {
	case KindPolyanet, KindSoloon, KindCometh:
		return true
	default:
		return false
	}
}

func (c SoloonColor) Valid() bool {
	switch c {
	case ColorWhite, ColorBlue, ColorRed, ColorPurple:
		return true
	default:
		return false
	}
}

func (d ComethDirection) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	default:
		return false
	}
}

type PlacementObject struct {
	Kind      ObjectKind      `json:"kind"`
	Position  Position        `json:"position"`
	Color     SoloonColor     `json:"color,omitempty"`
	Direction ComethDirection `json:"direction,omitempty"`
}

func NewPolyanet(pos Position) PlacementObject {
	return PlacementObject{Kind: KindPolyanet, Position: pos}
}

func NewSoloon(pos Position, color SoloonColor) PlacementObject {
	return PlacementObject{Kind: KindSoloon, Position: pos, Color: color}
}

func NewCometh(pos Position, direction ComethDirection) PlacementObject {
	return PlacementObject{Kind: KindCometh, Position: pos, Direction: direction}
}

func (o PlacementObject) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("unsupported object kind %q", o.Kind)
	}
	if o.Position.Row < 0 || o.Position.Column < 0 {
		return fmt.Errorf("position %s is out of range", o.Position)
	}

	switch o.Kind {
	case KindPolyanet:
		if o.Color != "" || o.Direction != "" {
			return fmt.Errorf("polyanet at %s must not carry attributes", o.Position)
		}
	case KindSoloon:
		if !o.Color.Valid() {
			return fmt.Errorf("soloon at %s has unsupported color %q", o.Position, o.Color)
		}
		if o.Direction != "" {
			return fmt.Errorf("soloon at %s must not carry a direction", o.Position)
		}
	case KindCometh:
		if !o.Direction.Valid() {
			return fmt.Errorf("cometh at %s has unsupported direction %q", o.Position, o.Direction)
		}
		if o.Color != "" {
			return fmt.Errorf("cometh at %s must not carry a color", o.Position)
		}
	}

	return nil
}

func (o PlacementObject) String() string {
	switch o.Kind {
	case KindSoloon:
		return strings.TrimSpace(fmt.Sprintf("%s soloon %s", o.Color, o.Position))
	case KindCometh:
		return strings.TrimSpace(fmt.Sprintf("%s cometh %s", o.Direction, o.Position))
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.Position)
	}
}
