package main // import "github.com/tonobo/magent-autonomy"

import (
	"fmt"
	"io"

	"github.com/joonazan/vec2"
)

// Decision records how an action was picked for the primary agent.
type Decision struct {
	Position   vec2.Vector
	Velocity   vec2.Vector
	Target     int
	Explicit   bool
	Assignment Assignment
	Cost       CostMatrix
	Movement   *Movement
}

// Decide resolves the landmark to pursue and the step towards it. With a nil
// target the landmark comes from the optimal assignment, otherwise target
// selects it directly and nothing is solved.
func Decide(obs Observations, target *int32) (*Decision, error) {
	d := &Decision{}
	if target != nil {
		d.Target = int(*target)
		d.Explicit = true
	} else {
		a, cost, err := AssignLandmarks(obs)
		if err != nil {
			return nil, err
		}
		d.Assignment = a
		d.Cost = cost
		d.Target = a[0]
	}
	rel, err := obs.Landmark(d.Target)
	if err != nil {
		return nil, err
	}
	d.Movement = NewMovement(rel)
	if d.Position, err = obs.SelfPosition(); err != nil {
		return nil, err
	}
	if d.Velocity, err = obs.SelfVelocity(); err != nil {
		return nil, err
	}
	return d, nil
}

// TowardsLandmark returns the action moving the primary agent towards its
// landmark.
func TowardsLandmark(obs []float64, target *int32) (Action, error) {
	d, err := Decide(Observations(obs), target)
	if err != nil {
		return NoAction, err
	}
	return d.Movement.Action, nil
}

// ReturnOne is the interop smoke test.
func ReturnOne() int32 {
	return 1
}

func (d *Decision) Print(w io.Writer) {
	m := d.Movement
	self := fmt.Sprintf("pos: (%0.3f, %0.3f), vel: (%0.3f, %0.3f)",
		d.Position.X, d.Position.Y, d.Velocity.X, d.Velocity.Y)
	if d.Explicit {
		fmt.Fprintf(w,
			"landmark %d (explicit): x: %0.3f, y: %0.3f, distance: %f, step: %s%v, %s\n",
			d.Target, m.Target.X, m.Target.Y, m.Magnitude, m.Action, m.Remaining(), self)
		return
	}
	fmt.Fprintf(w,
		"landmark %d (assigned): x: %0.3f, y: %0.3f, distance: %f, step: %s%v"+
			", assignment: %v, total_cost: %d, costs: %v, %s\n",
		d.Target, m.Target.X, m.Target.Y, m.Magnitude, m.Action, m.Remaining(),
		d.Assignment, d.Assignment.Cost(d.Cost), d.Cost, self)
}
