package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

func TestHeuristics(t *testing.T) {
	goal := grid.Cell{Row: 6, Col: 6}
	c := grid.Cell{Row: 3, Col: 2}
	assert.InDelta(t, 5.0, astar.Euclidean(goal, c), 1e-12)
	assert.Equal(t, 7.0, astar.Manhattan(goal, c))
	assert.Equal(t, 4.0, astar.Chebyshev(goal, c))
	assert.Equal(t, 0.0, astar.Zero(goal, c))

	// symmetric and zero at the goal
	for _, h := range []astar.Heuristic{astar.Euclidean, astar.Manhattan, astar.Chebyshev} {
		assert.Equal(t, h(goal, c), h(c, goal))
		assert.Equal(t, 0.0, h(goal, goal))
	}
	assert.Equal(t, math.Sqrt2, astar.Euclidean(grid.Cell{}, grid.Cell{Row: -1, Col: 1}))
}

func TestHeuristicByName(t *testing.T) {
	for _, name := range astar.HeuristicNames() {
		h, err := astar.HeuristicByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, h)
	}
	assert.Equal(t, []string{"chebyshev", "euclidean", "manhattan", "zero"}, astar.HeuristicNames())

	h, err := astar.HeuristicByName("")
	require.NoError(t, err)
	assert.Equal(t, 5.0, h(grid.Cell{}, grid.Cell{Row: 3, Col: 4}))

	_, err = astar.HeuristicByName("octile")
	assert.ErrorIs(t, err, astar.ErrUnknownHeuristic)
}
