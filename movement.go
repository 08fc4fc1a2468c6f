package main // import "github.com/tonobo/magent-autonomy"

import (
	"math"

	"github.com/joonazan/vec2"
)

// Action is the discrete move sent back to the environment.
type Action int

const (
	NoAction Action = iota
	MoveLeft
	MoveRight
	MoveDown
	MoveUp
)

var (
	Action2Name = map[Action]string{
		NoAction:  "none",
		MoveLeft:  "left",
		MoveRight: "right",
		MoveDown:  "down",
		MoveUp:    "up",
	}
	Action2Vector = map[Action]vec2.Vector{
		NoAction:  vec2.Vector{X: 0, Y: 0},
		MoveLeft:  vec2.Vector{X: -1, Y: 0},
		MoveRight: vec2.Vector{X: 1, Y: 0},
		MoveDown:  vec2.Vector{X: 0, Y: -1},
		MoveUp:    vec2.Vector{X: 0, Y: 1},
	}
)

func (a Action) String() string {
	if name, ok := Action2Name[a]; ok {
		return name
	}
	return "unknown"
}

func (a Action) Vector() vec2.Vector {
	return Action2Vector[a]
}

// Code is the integer form used on the wire.
func (a Action) Code() int32 {
	return int32(a)
}

// ChooseAction steps along whichever axis is further off. Ties, including the
// zero offset, go to the x axis, so (0, 0) yields MoveLeft.
func ChooseAction(rel vec2.Vector) Action {
	if math.Abs(rel.X) < math.Abs(rel.Y) {
		if rel.Y > 0 {
			return MoveUp
		}
		return MoveDown
	}
	if rel.X > 0 {
		return MoveRight
	}
	return MoveLeft
}

type Movement struct {
	Action    Action
	Magnitude float64
	Target    vec2.Vector
}

func NewMovement(rel vec2.Vector) *Movement {
	return &Movement{
		Action:    ChooseAction(rel),
		Magnitude: rel.Length(),
		Target:    rel,
	}
}

// Remaining is the offset left after taking one unit step.
func (m *Movement) Remaining() vec2.Vector {
	return m.Target.Minus(m.Action.Vector())
}
