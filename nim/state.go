package nim

import "fmt"

// NewState validates board and returns a State at the given turn. The board
// is copied.
func NewState(board []int, turn int) (State, error) {
	if len(board) == 0 {
		return State{}, ErrEmptyBoard
	}
	for i, n := range board {
		if n < 0 {
			return State{}, fmt.Errorf("%w: pile %d has %d", ErrNegativePile, i, n)
		}
	}
	return State{Board: append([]int(nil), board...), Turn: turn}, nil
}

// MaxToMove reports whether the maximizer plays this turn.
func (s State) MaxToMove() bool { return s.Turn%2 == 0 }

// Sticks returns the total number of sticks on the board.
func (s State) Sticks() int {
	n := 0
	for _, p := range s.Board {
		n += p
	}
	return n
}

// Moves lists the legal moves, pile by pile, fewest sticks first.
func (s State) Moves() []Move {
	moves := make([]Move, 0, s.Sticks())
	for i, n := range s.Board {
		for k := 1; k <= n; k++ {
			moves = append(moves, Move{Pile: i, Sticks: k})
		}
	}
	return moves
}

// Apply returns the state after m. s is left untouched.
func (s State) Apply(m Move) (State, error) {
	if m.Pile < 0 || m.Pile >= len(s.Board) || m.Sticks < 1 || m.Sticks > s.Board[m.Pile] {
		return s, fmt.Errorf("%w: %v on %v", ErrIllegalMove, m, s.Board)
	}
	return s.apply(m), nil
}

func (s State) apply(m Move) State {
	next := State{Board: append([]int(nil), s.Board...), Turn: s.Turn + 1}
	next.Board[m.Pile] -= m.Sticks
	return next
}

// Terminal reports whether the game is over: at most one stick remains.
func (s State) Terminal() bool { return s.Sticks() <= 1 }

// Utility scores a terminal state from the maximizer's side. The player to
// move loses when exactly one stick is left and wins when none is.
func (s State) Utility() int {
	lastStick := s.Sticks() == 1
	if s.MaxToMove() == lastStick {
		return -1
	}
	return 1
}

// Evaluate estimates a non-terminal state from its nim-sum: the player to
// move is scored as losing when the nim-sum is zero.
func (s State) Evaluate() int {
	sum := 0
	for _, p := range s.Board {
		sum ^= p
	}
	if s.MaxToMove() == (sum == 0) {
		return -1
	}
	return 1
}
