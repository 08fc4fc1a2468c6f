package main // import "github.com/tonobo/magent-autonomy"

import (
	"errors"
	"fmt"
	"math"

	"github.com/joonazan/vec2"
)

var (
	ErrShape     = errors.New("magent: cost matrix is not square")
	ErrCostRange = errors.New("magent: cost out of range")
	ErrNoMatch   = errors.New("magent: no augmenting path")
)

// ShapeError reports a cost matrix that cannot be perfectly matched.
type ShapeError struct {
	Rows int
	Row  int
	Cols int // length of Row
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: row %d has %d columns, want %d", ErrShape, e.Row, e.Cols, e.Rows)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// CostMatrix holds scaled distances, agents as rows and landmarks as columns.
type CostMatrix [][]int64

// Assignment maps each agent row to the landmark column it should pursue.
type Assignment []int

func (a Assignment) Cost(cost CostMatrix) int64 {
	var sum int64
	for row, col := range a {
		sum += cost[row][col]
	}
	return sum
}

// BuildCostMatrix lays out the primary agent in row 0 followed by the other
// agents. The observation is relative to the primary agent, so its origin is
// zero and every other agent uses its own offset as origin.
func BuildCostMatrix(obs Observations) (CostMatrix, error) {
	origins := make([]vec2.Vector, 0, NumOtherAgents+1)
	origins = append(origins, vec2.Vector{})
	for i := 0; i < NumOtherAgents; i++ {
		agent, err := obs.OtherAgent(i)
		if err != nil {
			return nil, err
		}
		origins = append(origins, agent)
	}
	landmarks := make([]vec2.Vector, NumLandmarks)
	for i := range landmarks {
		lm, err := obs.Landmark(i)
		if err != nil {
			return nil, err
		}
		landmarks[i] = lm
	}
	cost := make(CostMatrix, len(origins))
	for row, origin := range origins {
		cost[row] = make([]int64, len(landmarks))
		for col, lm := range landmarks {
			cost[row][col] = Distance(origin, lm)
		}
	}
	return cost, nil
}

// Solve finds the assignment with the smallest total cost using Kuhn-Munkres
// with row and column potentials, O(n^3). Rows are added one at a time and
// the augmenting search keeps the first (lowest) column on equal reduced
// cost, so a uniform matrix comes back as the identity. Costs must lie in
// [0, MaxDistance].
func Solve(cost CostMatrix) (Assignment, error) {
	n := len(cost)
	for i, row := range cost {
		if len(row) != n {
			return nil, &ShapeError{Rows: n, Cols: len(row), Row: i}
		}
		for j, c := range row {
			if c < 0 || c > MaxDistance {
				return nil, fmt.Errorf("%w: cost[%d][%d] = %d", ErrCostRange, i, j, c)
			}
		}
	}
	if n == 0 {
		return Assignment{}, nil
	}

	const inf = math.MaxInt64 / 4

	// 1-indexed; column 0 is the virtual start of every augmenting path.
	u := make([]int64, n+1)
	v := make([]int64, n+1)
	p := make([]int, n+1)   // p[j] = row holding column j
	way := make([]int, n+1) // way[j] = previous column on the path
	minv := make([]int64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := 1; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := int64(inf)
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				return nil, fmt.Errorf("%w for row %d", ErrNoMatch, i-1)
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	result := make(Assignment, n)
	for j := 1; j <= n; j++ {
		result[p[j]-1] = j - 1
	}
	return result, nil
}

// AssignLandmarks builds a fresh cost matrix from obs and solves it.
func AssignLandmarks(obs Observations) (Assignment, CostMatrix, error) {
	cost, err := BuildCostMatrix(obs)
	if err != nil {
		return nil, nil, err
	}
	a, err := Solve(cost)
	if err != nil {
		return nil, cost, err
	}
	return a, cost, nil
}
