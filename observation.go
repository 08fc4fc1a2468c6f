package main // import "github.com/tonobo/magent-autonomy"

import (
	"errors"
	"fmt"

	"github.com/joonazan/vec2"
)

var (
	ErrObservationTooShort = errors.New("magent: observation vector too short")
	ErrTargetOutOfRange    = errors.New("magent: target index out of range")
)

// Field is an index into the observation vector.
type Field int

const (
	SelfVelX Field = iota
	SelfVelY
	SelfPosX
	SelfPosY
	LandmarkOneRelPositionX
	LandmarkOneRelPositionY
	LandmarkTwoRelPositionX
	LandmarkTwoRelPositionY
	LandmarkThreeRelPositionX
	LandmarkThreeRelPositionY
	OtherAgentOneRelPositionX
	OtherAgentOneRelPositionY
	OtherAgentTwoRelPositionX
	OtherAgentTwoRelPositionY
	CommunicationOne
	CommunicationTwo
	CommunicationThree
	CommunicationFour
)

const (
	MinObservationLen = int(CommunicationFour) + 1
	NumLandmarks      = int(OtherAgentOneRelPositionX-LandmarkOneRelPositionX) / 2
	NumOtherAgents    = int(CommunicationOne-OtherAgentOneRelPositionX) / 2
)

// Observations is the flat vector handed over by the environment. Landmarks
// and other agents occupy consecutive x/y pairs.
type Observations []float64

func (o Observations) pair(base Field, i, count int) (vec2.Vector, error) {
	if i < 0 || i >= count {
		return vec2.Vector{}, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, i, count)
	}
	x := int(base) + 2*i
	if x+1 >= len(o) {
		return vec2.Vector{}, fmt.Errorf("%w: need index %d, have %d values",
			ErrObservationTooShort, x+1, len(o))
	}
	return point(o[x], o[x+1]), nil
}

func (o Observations) SelfVelocity() (vec2.Vector, error) {
	return o.pair(SelfVelX, 0, 1)
}

func (o Observations) SelfPosition() (vec2.Vector, error) {
	return o.pair(SelfPosX, 0, 1)
}

// Landmark returns landmark i relative to the observing agent.
func (o Observations) Landmark(i int) (vec2.Vector, error) {
	return o.pair(LandmarkOneRelPositionX, i, NumLandmarks)
}

// OtherAgent returns other agent i relative to the observing agent.
func (o Observations) OtherAgent(i int) (vec2.Vector, error) {
	return o.pair(OtherAgentOneRelPositionX, i, NumOtherAgents)
}
