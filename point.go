package main // import "github.com/tonobo/magent-autonomy"

import (
	"math"

	"github.com/joonazan/vec2"
)

// MaxDistance caps scaled distances so sums over a cost matrix stay far from
// int64 overflow. Anything further away, infinite or NaN counts as MaxDistance.
const MaxDistance int64 = 1 << 40

// Distance returns the euclidean distance between origin and rel, scaled by
// DistanceScale and truncated. Only the ordering matters to the solver, so the
// downward bias of truncation is fine, but the value is not rounded.
func Distance(origin, rel vec2.Vector) int64 {
	d := rel.Minus(origin)
	scaled := math.Sqrt(d.X*d.X+d.Y*d.Y) * DistanceScale
	if math.IsNaN(scaled) || scaled >= float64(MaxDistance) {
		return MaxDistance
	}
	return int64(scaled)
}

func point(x, y float64) vec2.Vector {
	return vec2.Vector{X: x, Y: y}
}
