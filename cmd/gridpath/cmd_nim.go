package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/nim"
)

func newNimCmd() *cobra.Command {
	var (
		turn   int
		depths []int
		play   bool
	)
	cmd := &cobra.Command{
		Use:   "nim <pile>...",
		Short: "Pick misère Nim moves with alpha-beta minimax",
		Long: "Pick misère Nim moves with alpha-beta minimax. Even turns belong to the\n" +
			"maximizing player. Each --depths value is searched separately so horizons\n" +
			"can be compared; --play finishes the game with the deepest one.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board := make([]int, len(args))
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("pile %d: %w", i, err)
				}
				board[i] = n
			}
			s, err := nim.NewState(board, turn)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if play {
				depth := 0
				for _, d := range depths {
					depth = max(depth, d)
				}
				g, err := nim.Play(s, nim.WithDepth(depth))
				if err != nil {
					return err
				}
				logger.WithFields(logrus.Fields{"moves": len(g.Moves), "winner": g.Winner}).Info("nim game finished")
				if flagFmt == "json" {
					return formatJSON(out, g)
				}
				printGame(out, s, g)
				return nil
			}

			results := make([]nim.Result, len(depths))
			for i, d := range depths {
				res, err := nim.BestMove(s, nim.WithDepth(d))
				if err != nil {
					return err
				}
				results[i] = res
			}
			if flagFmt == "json" {
				return formatJSON(out, results)
			}
			rows := make([][]string, len(results))
			for i, r := range results {
				rows[i] = []string{fmt.Sprint(depths[i]), r.Move.String(), fmt.Sprintf("%+d", r.Value), fmt.Sprint(r.Nodes)}
			}
			formatTable(out, []string{"DEPTH", "MOVE", "VALUE", "NODES"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&turn, "turn", 2, "Turn number; even turns are the maximizer's")
	cmd.Flags().IntSliceVar(&depths, "depths", []int{nim.DefaultDepth}, "Search depths to compare")
	cmd.Flags().BoolVar(&play, "play", false, "Play the game out with both sides searching")
	return cmd
}

func printGame(w io.Writer, s nim.State, g nim.Game) {
	st := s
	for _, m := range g.Moves {
		side := nim.Min
		if st.MaxToMove() {
			side = nim.Max
		}
		fmt.Fprintf(w, "%-14s %s  %s\n", boardString(st.Board), side, m)
		st, _ = st.Apply(m)
	}
	fmt.Fprintf(w, "%-14s winner: %s\n", boardString(g.Final.Board), g.Winner)
}

func boardString(board []int) string {
	parts := make([]string, len(board))
	for i, n := range board {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
