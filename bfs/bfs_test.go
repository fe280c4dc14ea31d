package bfs_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
)

func cells(pairs ...[2]int) []grid.Cell {
	out := make([]grid.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = grid.Cell{Row: p[0], Col: p[1]}
	}
	return out
}

// TestSolve_Ring pins the up, down, left, right visit order.
func TestSolve_Ring(t *testing.T) {
	g := grid.MustNew([][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})
	res := bfs.Solve(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})

	if res.Steps != 5 {
		t.Errorf("Steps = %d; want 5", res.Steps)
	}
	wantPath := cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	if !reflect.DeepEqual(res.Path, wantPath) {
		t.Errorf("Path = %v; want %v", res.Path, wantPath)
	}
	wantTrace := cells(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{2, 0},
		[2]int{0, 2}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2},
	)
	assert.Equal(t, wantTrace, res.Visited)
}

// TestSolve_Scenarios checks step counts and visit counts on built-in mazes.
func TestSolve_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		steps   int
		visited int
	}{
		{"small", 17, 31},
		{"unreachable", bfs.NotFound, 31},
		{"lab", 21, 65},
		{"big", 71, 182},
		{"big-inner", 47, 190},
		{"open-field", bfs.NotFound, 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := scenario.Builtin(tc.name)
			require.NoError(t, err)
			start, goal := sc.Endpoints()

			res := bfs.Solve(sc.Grid(), start, goal)
			assert.Equal(t, tc.steps, res.Steps)
			assert.Len(t, res.Visited, tc.visited)
			if !res.Found() {
				assert.Empty(t, res.Path)
				assert.Len(t, res.Visited, len(sc.Grid().Reachable(start)))
				return
			}
			assert.Len(t, res.Path, res.Steps)
			assert.Equal(t, start, res.Path[0])
			assert.Equal(t, goal, res.Path[len(res.Path)-1])
			_, err = grid.Directions(res.Path)
			assert.NoError(t, err)
		})
	}
}

func TestSolve_StartIsGoal(t *testing.T) {
	g := grid.MustNew([][]int{{0}})
	c := grid.Cell{}
	res := bfs.Solve(g, c, c)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, []grid.Cell{c}, res.Path)
	assert.Equal(t, []grid.Cell{c}, res.Visited)
}

func TestSolve_OutOfBoundsGoal(t *testing.T) {
	g := grid.MustNew([][]int{{0, 0}, {0, 0}})
	res := bfs.Solve(g, grid.Cell{}, grid.Cell{Row: 5, Col: 5})
	assert.Equal(t, bfs.NotFound, res.Steps)
	assert.NotNil(t, res.Path)
	assert.Len(t, res.Visited, 4)
}

func TestSolve_Hooks(t *testing.T) {
	g := grid.MustNew([][]int{{0, 0, 0}})
	var enq, vis []int
	res := bfs.Solve(g, grid.Cell{}, grid.Cell{Row: 0, Col: 2},
		bfs.WithOnEnqueue(func(_ grid.Cell, d int) { enq = append(enq, d) }),
		bfs.WithOnVisit(func(_ grid.Cell, d int) { vis = append(vis, d) }),
		bfs.WithOnVisit(nil),
	)
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, []int{0, 1, 2}, enq)
	assert.Equal(t, []int{0, 1, 2}, vis)
}

func TestSolve_NilGridPanics(t *testing.T) {
	assert.Panics(t, func() { bfs.Solve(nil, grid.Cell{}, grid.Cell{}) })
}
