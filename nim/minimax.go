package nim

import (
	"fmt"
	"math"
)

// searcher holds the options and node counter of one BestMove call.
type searcher struct {
	opts  Options
	nodes int
}

// BestMove picks the move for the player to move in s: the maximizer on
// even turns, the minimizer on odd ones.
func BestMove(s State, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if _, err := NewState(s.Board, s.Turn); err != nil {
		return Result{}, err
	}
	if s.Terminal() {
		return Result{}, fmt.Errorf("%w: %v", ErrGameOver, s.Board)
	}

	sr := &searcher{opts: o}
	var (
		m Move
		v int
	)
	if s.MaxToMove() {
		m, v = sr.maxMove(s, math.MinInt, math.MaxInt, o.Depth)
	} else {
		m, v = sr.minMove(s, math.MinInt, math.MaxInt, o.Depth)
	}
	return Result{Move: m, Value: v, Nodes: sr.nodes}, nil
}

// leaf scores s when the search stops there.
func (sr *searcher) leaf(s State, depth int) (int, bool) {
	sr.nodes++
	sr.opts.OnNode(s, depth)
	switch {
	case s.Terminal():
		return s.Utility(), true
	case depth == 0:
		return s.Evaluate(), true
	}
	return 0, false
}

func (sr *searcher) maxMove(s State, alpha, beta, depth int) (Move, int) {
	if v, ok := sr.leaf(s, depth); ok {
		return Move{}, v
	}
	best, value := Move{}, math.MinInt
	for _, m := range s.Moves() {
		_, v := sr.minMove(s.apply(m), alpha, beta, depth-1)
		if v > value {
			best, value = m, v
		}
		if value >= beta {
			break
		}
		alpha = max(alpha, value)
	}
	return best, value
}

func (sr *searcher) minMove(s State, alpha, beta, depth int) (Move, int) {
	if v, ok := sr.leaf(s, depth); ok {
		return Move{}, v
	}
	best, value := Move{}, math.MaxInt
	for _, m := range s.Moves() {
		_, v := sr.maxMove(s.apply(m), alpha, beta, depth-1)
		if v < value {
			best, value = m, v
		}
		if value <= alpha {
			break
		}
		beta = min(beta, value)
	}
	return best, value
}

// Play lets BestMove choose for both players until the game ends.
func Play(s State, opts ...Option) (Game, error) {
	st, err := NewState(s.Board, s.Turn)
	if err != nil {
		return Game{}, err
	}
	var g Game
	for !st.Terminal() {
		res, err := BestMove(st, opts...)
		if err != nil {
			return Game{}, err
		}
		g.Moves = append(g.Moves, res.Move)
		st = st.apply(res.Move)
	}
	g.Final = st
	g.Winner = Min
	if st.Utility() > 0 {
		g.Winner = Max
	}
	return g, nil
}
