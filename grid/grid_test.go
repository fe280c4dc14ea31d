package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// small is the 7×7 coursework maze; (0,6) is an isolated open cell.
var small = [][]int{
	{0, 1, 0, 0, 0, 1, 0},
	{0, 1, 0, 1, 0, 1, 1},
	{0, 0, 0, 1, 0, 0, 0},
	{1, 0, 1, 0, 0, 0, 0},
	{0, 0, 1, 1, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 1},
	{0, 1, 1, 1, 0, 0, 0},
}

//----------------------------------------------------------------------------//
// New / MustNew
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or non-binary inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 1}, {0}}, grid.ErrNonRectangular},
		{"BadValue", [][]int{{0, 2}}, grid.ErrBadCellValue},
		{"Negative", [][]int{{-1}}, grid.ErrBadCellValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.values, err, tc.err)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.MustNew([][]int{{0}, {0, 0}}) })
	assert.NotPanics(t, func() { grid.MustNew([][]int{{0}}) })
}

// TestNew_DeepCopy checks that mutating the input after New has no effect.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]int{{0, 0}, {0, 1}}
	g, err := grid.New(in)
	require.NoError(t, err)

	in[0][0] = 1
	assert.True(t, g.Passable(grid.Cell{Row: 0, Col: 0}))
	assert.Equal(t, [][]int{{0, 0}, {0, 1}}, g.Values())

	out := g.Values()
	out[1][1] = 0
	assert.True(t, g.Blocked(grid.Cell{Row: 1, Col: 1}), "Values must return a copy")
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestBoundsAndOccupancy(t *testing.T) {
	g := grid.MustNew([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.PassableCount())

	for _, c := range []grid.Cell{{0, 0}, {1, 2}, {1, 1}} {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	for _, c := range []grid.Cell{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
		// out-of-bounds cells are neither walls nor open
		assert.False(t, g.Blocked(c))
		assert.False(t, g.Passable(c))
	}
	assert.True(t, g.Blocked(grid.Cell{Row: 0, Col: 1}))
	assert.True(t, g.Passable(grid.Cell{Row: 1, Col: 1}))
}

// TestNeighbors_Order checks the fixed (0,+1), (+1,0), (0,-1), (-1,0) order.
func TestNeighbors_Order(t *testing.T) {
	g := grid.MustNew([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	got := g.Neighbors(grid.Cell{Row: 1, Col: 1})
	want := []grid.Cell{{1, 2}, {2, 1}, {1, 0}, {0, 1}}
	assert.Equal(t, want, got)

	// walls and edges are filtered
	g = grid.MustNew(small)
	assert.Equal(t, []grid.Cell{{1, 0}}, g.Neighbors(grid.Cell{Row: 0, Col: 0}))
	assert.Empty(t, g.Neighbors(grid.Cell{Row: 0, Col: 6}))
}

func TestCell_StepAndString(t *testing.T) {
	c := grid.Cell{Row: 2, Col: 3}
	assert.Equal(t, grid.Cell{Row: 1, Col: 3}, c.Step(grid.Up))
	assert.Equal(t, grid.Cell{Row: 3, Col: 3}, c.Step(grid.Down))
	assert.Equal(t, grid.Cell{Row: 2, Col: 2}, c.Step(grid.Left))
	assert.Equal(t, grid.Cell{Row: 2, Col: 4}, c.Step(grid.Right))
	assert.Equal(t, "(2,3)", c.String())
	assert.Equal(t, "left", grid.Left.String())
}

//----------------------------------------------------------------------------//
// Parse / String
//----------------------------------------------------------------------------//

func TestParse_Markers(t *testing.T) {
	g, m, err := grid.Parse("\nS.#\n.#.\n..G\n\n")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 1}, {0, 1, 0}, {0, 0, 0}}, g.Values())
	assert.True(t, m.HasStart)
	assert.True(t, m.HasGoal)
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, m.Start)
	assert.Equal(t, grid.Cell{Row: 2, Col: 2}, m.Goal)
}

func TestParse_DigitsAndCRLF(t *testing.T) {
	g, m, err := grid.Parse("010\r\n000\r\n")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 0}, {0, 0, 0}}, g.Values())
	assert.False(t, m.HasStart)
	assert.False(t, m.HasGoal)
}

func TestParse_Errors(t *testing.T) {
	_, _, err := grid.Parse("..\n.x")
	assert.ErrorIs(t, err, grid.ErrBadMazeRune)

	_, _, err = grid.Parse("...\n..")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, _, err = grid.Parse("\n\n")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestString_RoundTrip(t *testing.T) {
	g := grid.MustNew(small)
	text := g.String()
	assert.Equal(t, ".#...#.", text[:7])

	back, _, err := grid.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, g.Values(), back.Values())
}

//----------------------------------------------------------------------------//
// Directions
//----------------------------------------------------------------------------//

func TestDirections(t *testing.T) {
	path := []grid.Cell{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	moves, err := grid.Directions(path)
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{grid.Right, grid.Down, grid.Left, grid.Up}, moves)

	moves, err = grid.Directions([]grid.Cell{{3, 3}})
	require.NoError(t, err)
	assert.Empty(t, moves)

	_, err = grid.Directions([]grid.Cell{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, grid.ErrNotAdjacent)
}
