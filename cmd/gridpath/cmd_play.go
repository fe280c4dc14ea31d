package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/tui"
)

func newPlayCmd() *cobra.Command {
	var (
		pf       problemFlags
		mf       methodFlags
		interval = tui.DefaultInterval
	)
	cmd := &cobra.Command{
		Use:   "play [scenario]",
		Short: "Replay a search in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.load(args)
			if err != nil {
				return err
			}
			m, err := mf.method(p)
			if err != nil {
				return err
			}
			a, o, err := animate(p, m)
			if err != nil {
				return err
			}
			title := p.name + " · " + m.String()
			return tui.Run(tui.NewModel(a, title, o.Steps, interval))
		},
	}
	pf.register(cmd)
	mf.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", interval, "Delay between frames")
	return cmd
}
