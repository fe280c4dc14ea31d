// Package nim plays misère Nim with depth-limited minimax and alpha-beta
// pruning.
//
// A State is a board of piles plus a turn counter. Even turns belong to the
// maximizing player, odd turns to the minimizing one. A move removes one or
// more sticks from a single pile. The game ends when at most one stick is
// left: the player who would have to take the last stick loses.
//
// Scoring:
//   - Utility scores a terminal state: +1 when the maximizer has won,
//     -1 when the minimizer has.
//   - Evaluate scores a state at the depth cutoff from its nim-sum.
//
// BestMove searches moves pile by pile, fewest sticks first, and keeps the
// first move reaching the best value. Play repeats BestMove for both sides
// until the game ends.
//
// Errors:
//   - ErrEmptyBoard: the board has no piles.
//   - ErrNegativePile: a pile holds fewer than zero sticks.
//   - ErrIllegalMove: a move names a missing pile or too many sticks.
//   - ErrGameOver: BestMove was asked about a terminal state.
//   - ErrOptionViolation: an Option received an invalid argument.
package nim
