package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// draw paints f onto a fresh gg context.
func draw(f Frame, o Options) *gg.Context {
	size := o.CellSize
	dc := gg.NewContext(f.Width*size, f.Height*size)
	dc.SetColor(gridLine)
	dc.Clear()

	inner := float64(size - 2*o.Border)
	for r := 0; r < f.Height; r++ {
		for c := 0; c < f.Width; c++ {
			dc.SetColor(colorOf(o, f.Cells[r*f.Width+c]))
			dc.DrawRectangle(float64(c*size+o.Border), float64(r*size+o.Border), inner, inner)
			dc.Fill()
		}
	}
	return dc
}

func colorOf(o Options, s State) color.Color {
	if c, ok := o.Palette[s]; ok {
		return c
	}
	return DefaultPalette[s]
}

// Image returns f as an RGBA image.
func Image(f Frame, opts ...Option) (image.Image, error) {
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	return draw(f, o).Image(), nil
}

// PNG encodes f as a PNG image.
func PNG(w io.Writer, f Frame, opts ...Option) error {
	o, err := build(opts)
	if err != nil {
		return err
	}
	if err := draw(f, o).EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// palette lists every color a frame can contain, for GIF encoding.
func palette(o Options) color.Palette {
	p := color.Palette{gridLine}
	for s := Empty; s <= Frontier; s++ {
		p = append(p, colorOf(o, s))
	}
	return p
}

// GIF encodes every frame of a as one looping animated GIF.
func GIF(w io.Writer, a *Animation, opts ...Option) error {
	o, err := build(opts)
	if err != nil {
		return err
	}

	pal := palette(o)
	out := &gif.GIF{}
	for i := 0; i < a.Len(); i++ {
		img := draw(a.Frame(i), o).Image()
		frame := image.NewPaletted(img.Bounds(), pal)
		xdraw.Draw(frame, frame.Rect, img, img.Bounds().Min, xdraw.Src)
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, o.Delay)
	}
	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}
