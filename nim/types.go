package nim

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBoard indicates a board without piles.
	ErrEmptyBoard = errors.New("nim: board has no piles")

	// ErrNegativePile indicates a pile below zero sticks.
	ErrNegativePile = errors.New("nim: negative pile")

	// ErrIllegalMove indicates a move that the board does not allow.
	ErrIllegalMove = errors.New("nim: illegal move")

	// ErrGameOver indicates a search on a terminal state.
	ErrGameOver = errors.New("nim: game is over")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nim: invalid option supplied")
)

// DefaultDepth is the search horizon used when WithDepth is not given.
const DefaultDepth = 5

// Move takes Sticks sticks from pile Pile (0-indexed).
type Move struct {
	Pile   int `json:"pile"`
	Sticks int `json:"sticks"`
}

// String renders "pile 2: -3".
func (m Move) String() string { return fmt.Sprintf("pile %d: -%d", m.Pile, m.Sticks) }

// State is a board and the number of the turn about to be played.
type State struct {
	Board []int `json:"board"`
	Turn  int   `json:"turn"`
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the search horizon and hooks.
type Options struct {
	// Depth is the number of plies searched before Evaluate is used.
	Depth int

	// OnNode is called for every state the search enters, the root included.
	OnNode func(s State, depth int)

	err error
}

// DefaultOptions returns DefaultDepth and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Depth:  DefaultDepth,
		OnNode: func(State, int) {},
	}
}

// WithDepth sets the search horizon (must be ≥ 1).
func WithDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: depth must be at least 1 (%d)", ErrOptionViolation, d)
			return
		}
		o.Depth = d
	}
}

// WithOnNode registers a callback run on every searched state.
func WithOnNode(fn func(s State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNode = fn
		}
	}
}

// Result is the outcome of BestMove:
//   - Move: the chosen move.
//   - Value: its minimax value, +1 or -1.
//   - Nodes: states searched, the root included.
type Result struct {
	Move  Move `json:"move"`
	Value int  `json:"value"`
	Nodes int  `json:"nodes"`
}

// Game is a finished Play: the moves in order and the final state.
type Game struct {
	Moves  []Move `json:"moves"`
	Final  State  `json:"final"`
	Winner string `json:"winner"`
}

// Player names used in Game.Winner.
const (
	Max = "max"
	Min = "min"
)
