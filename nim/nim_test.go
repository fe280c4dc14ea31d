package nim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/nim"
)

func state(t *testing.T, turn int, board ...int) nim.State {
	t.Helper()
	s, err := nim.NewState(board, turn)
	require.NoError(t, err)
	return s
}

//----------------------------------------------------------------------------//
// State
//----------------------------------------------------------------------------//

func TestNewState_Errors(t *testing.T) {
	_, err := nim.NewState(nil, 0)
	assert.ErrorIs(t, err, nim.ErrEmptyBoard)

	_, err = nim.NewState([]int{1, -2}, 0)
	assert.ErrorIs(t, err, nim.ErrNegativePile)
}

func TestNewState_CopiesBoard(t *testing.T) {
	board := []int{3, 4}
	s, err := nim.NewState(board, 2)
	require.NoError(t, err)
	board[0] = 0
	assert.Equal(t, []int{3, 4}, s.Board)
}

func TestMoves_Order(t *testing.T) {
	s := state(t, 2, 2, 0, 1)
	assert.Equal(t, []nim.Move{{Pile: 0, Sticks: 1}, {Pile: 0, Sticks: 2}, {Pile: 2, Sticks: 1}}, s.Moves())
}

func TestApply(t *testing.T) {
	s := state(t, 1, 3, 4)
	next, err := s.Apply(nim.Move{Pile: 1, Sticks: 4})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0}, next.Board)
	assert.Equal(t, 2, next.Turn)
	assert.Equal(t, []int{3, 4}, s.Board, "Apply must not mutate the receiver")

	for _, m := range []nim.Move{{Pile: 2, Sticks: 1}, {Pile: -1, Sticks: 1}, {Pile: 0, Sticks: 0}, {Pile: 0, Sticks: 4}} {
		_, err := s.Apply(m)
		assert.ErrorIs(t, err, nim.ErrIllegalMove, "%v", m)
	}
}

func TestTerminalAndUtility(t *testing.T) {
	cases := []struct {
		name     string
		s        nim.State
		terminal bool
		utility  int
	}{
		{"max left with last stick", nim.State{Board: []int{0, 1}, Turn: 2}, true, -1},
		{"max left with nothing", nim.State{Board: []int{0, 0}, Turn: 2}, true, 1},
		{"min left with last stick", nim.State{Board: []int{1}, Turn: 3}, true, 1},
		{"min left with nothing", nim.State{Board: []int{0}, Turn: 3}, true, -1},
		{"two sticks", nim.State{Board: []int{1, 1}, Turn: 2}, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.terminal, tc.s.Terminal())
			if tc.terminal {
				assert.Equal(t, tc.utility, tc.s.Utility())
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	// 1^4^5 == 0
	assert.Equal(t, -1, nim.State{Board: []int{1, 4, 5}, Turn: 2}.Evaluate())
	assert.Equal(t, 1, nim.State{Board: []int{1, 4, 5}, Turn: 3}.Evaluate())
	assert.Equal(t, 1, nim.State{Board: []int{2, 4, 5}, Turn: 2}.Evaluate())
	assert.Equal(t, -1, nim.State{Board: []int{2, 4, 5}, Turn: 3}.Evaluate())
}

//----------------------------------------------------------------------------//
// BestMove
//----------------------------------------------------------------------------//

func TestBestMove(t *testing.T) {
	cases := []struct {
		name  string
		board []int
		turn  int
		depth int
		move  nim.Move
		value int
		nodes int
	}{
		{"345 max depth 5", []int{3, 4, 5}, 2, 5, nim.Move{Pile: 0, Sticks: 1}, 1, 1868},
		{"345 max depth 1", []int{3, 4, 5}, 2, 1, nim.Move{Pile: 0, Sticks: 2}, 1, 13},
		{"12 max takes the pair", []int{1, 2}, 2, 5, nim.Move{Pile: 1, Sticks: 2}, 1, 7},
		{"22 max is lost", []int{2, 2}, 2, 5, nim.Move{Pile: 0, Sticks: 1}, -1, 17},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := nim.BestMove(state(t, tc.turn, tc.board...), nim.WithDepth(tc.depth))
			require.NoError(t, err)
			assert.Equal(t, tc.move, res.Move)
			assert.Equal(t, tc.value, res.Value)
			assert.Equal(t, tc.nodes, res.Nodes)
		})
	}
}

func TestBestMove_Minimizer(t *testing.T) {
	cases := []struct {
		board []int
		move  nim.Move
		value int
	}{
		{[]int{3, 4, 5}, nim.Move{Pile: 0, Sticks: 1}, -1},
		{[]int{2, 3}, nim.Move{Pile: 1, Sticks: 1}, -1},
	}
	for _, tc := range cases {
		res, err := nim.BestMove(state(t, 1, tc.board...))
		require.NoError(t, err)
		assert.Equal(t, tc.move, res.Move, "%v", tc.board)
		assert.Equal(t, tc.value, res.Value, "%v", tc.board)
	}
}

func TestBestMove_Errors(t *testing.T) {
	_, err := nim.BestMove(nim.State{Board: []int{0, 1}, Turn: 2})
	assert.ErrorIs(t, err, nim.ErrGameOver)

	_, err = nim.BestMove(nim.State{Board: []int{3, 4}, Turn: 2}, nim.WithDepth(0))
	assert.ErrorIs(t, err, nim.ErrOptionViolation)

	_, err = nim.BestMove(nim.State{Board: []int{3, -1}, Turn: 2})
	assert.ErrorIs(t, err, nim.ErrNegativePile)
}

func TestBestMove_OnNode(t *testing.T) {
	var depths []int
	res, err := nim.BestMove(state(t, 2, 3, 4, 5),
		nim.WithDepth(1),
		nim.WithOnNode(func(_ nim.State, d int) { depths = append(depths, d) }),
		nil,
	)
	require.NoError(t, err)
	require.Len(t, depths, res.Nodes)
	assert.Equal(t, 1, depths[0])
	for _, d := range depths[1:] {
		assert.Equal(t, 0, d)
	}
}

//----------------------------------------------------------------------------//
// Play
//----------------------------------------------------------------------------//

func TestPlay(t *testing.T) {
	g, err := nim.Play(state(t, 2, 3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, []nim.Move{
		{Pile: 0, Sticks: 1}, {Pile: 0, Sticks: 1}, {Pile: 1, Sticks: 1}, {Pile: 1, Sticks: 1},
		{Pile: 2, Sticks: 1}, {Pile: 2, Sticks: 1}, {Pile: 0, Sticks: 1}, {Pile: 2, Sticks: 1},
		{Pile: 1, Sticks: 1}, {Pile: 2, Sticks: 2},
	}, g.Moves)
	assert.Equal(t, nim.State{Board: []int{0, 1, 0}, Turn: 12}, g.Final)
	assert.Equal(t, nim.Min, g.Winner)
}

func TestPlay_ShallowMaxWins(t *testing.T) {
	g, err := nim.Play(state(t, 2, 2, 3), nim.WithDepth(3))
	require.NoError(t, err)
	assert.Equal(t, []nim.Move{{Pile: 1, Sticks: 1}, {Pile: 0, Sticks: 1}, {Pile: 1, Sticks: 2}}, g.Moves)
	assert.Equal(t, []int{1, 0}, g.Final.Board)
	assert.Equal(t, nim.Max, g.Winner)
}

func TestPlay_AlreadyOver(t *testing.T) {
	g, err := nim.Play(state(t, 3, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, g.Moves)
	assert.Equal(t, nim.Min, g.Winner)
}
