package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/render"
)

func newRenderCmd() *cobra.Command {
	var (
		pf       problemFlags
		mf       methodFlags
		format   string
		out      string
		frame    int
		cellSize int
		border   int
		delay    int
	)
	cmd := &cobra.Command{
		Use:   "render [scenario]",
		Short: "Draw a search as text, PNG or animated GIF",
		Long: "Draw a search as text, PNG or animated GIF. Text and PNG show one frame\n" +
			"(--frame, default the last); GIF shows the whole replay.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.load(args)
			if err != nil {
				return err
			}
			m, err := mf.method(p)
			if err != nil {
				return err
			}
			a, _, err := animate(p, m)
			if err != nil {
				return err
			}
			idx := frame
			if idx < 0 {
				idx = a.Len() - 1
			}

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			opts := []render.Option{
				render.WithCellSize(cellSize),
				render.WithBorder(border),
				render.WithDelay(delay),
			}
			if err := writeRender(w, a, idx, format, opts); err != nil {
				return err
			}
			if out != "" && out != "-" {
				logger.WithField("file", out).Info("written")
			}
			return nil
		},
	}
	pf.register(cmd)
	mf.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "Output: text|png|gif")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().IntVar(&frame, "frame", -1, "Frame to draw for text and png; negative means last")
	cmd.Flags().IntVar(&cellSize, "cell-size", 50, "Cell size in pixels")
	cmd.Flags().IntVar(&border, "border", 2, "Cell border in pixels")
	cmd.Flags().IntVar(&delay, "delay", 10, "GIF frame delay in 1/100 s")
	return cmd
}

func writeRender(w io.Writer, a *render.Animation, frame int, format string, opts []render.Option) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, render.Text(a.Frame(frame)))
		return err
	case "png":
		return render.PNG(w, a.Frame(frame), opts...)
	case "gif":
		return render.GIF(w, a, opts...)
	}
	return fmt.Errorf("--format must be text, png or gif, got %q", format)
}
