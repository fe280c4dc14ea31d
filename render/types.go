// Package render turns search traces into frames and writes them as text,
// PNG or animated GIF.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("render: invalid option supplied")

// State is what a single cell shows in a frame.
type State uint8

const (
	// Empty is an open, untouched cell.
	Empty State = iota
	// Wall is a blocked cell.
	Wall
	// Endpoint is the start or goal.
	Endpoint
	// Visited is a cell already popped by the search.
	Visited
	// Path is a cell on the final route.
	Path
	// Frontier is a queued, not yet visited cell.
	Frontier
)

var stateNames = [...]string{"empty", "wall", "endpoint", "visited", "path", "frontier"}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// TailFrames is the number of frames appended after the last visit, all
// showing the final route.
const TailFrames = 5

// DefaultPalette maps each State to its fill color.
var DefaultPalette = map[State]color.Color{
	Empty:    colornames.White,
	Wall:     colornames.Black,
	Endpoint: colornames.Red,
	Visited:  colornames.Lightblue,
	Path:     colornames.Gold,
	Frontier: colornames.Palegreen,
}

// gridLine is the color showing between cells when Border > 0.
var gridLine = colornames.Lightgray

// Option configures image output via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when PNG or GIF is invoked.
type Option func(*Options)

// Options holds image geometry, timing and colors.
type Options struct {
	// CellSize is the side of one cell in pixels.
	CellSize int
	// Border is the gap in pixels drawn around each cell.
	Border int
	// Delay is the per-frame GIF delay in 100ths of a second.
	Delay int
	// Palette maps states to fill colors; missing states use DefaultPalette.
	Palette map[State]color.Color

	err error
}

// DefaultOptions returns 50 px cells, a 2 px border and 100 ms frames.
func DefaultOptions() Options {
	return Options{
		CellSize: 50,
		Border:   2,
		Delay:    10,
		Palette:  DefaultPalette,
	}
}

// WithCellSize sets the cell side in pixels (must be > 0).
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px <= 0 {
			o.err = fmt.Errorf("%w: cell size must be positive (%d)", ErrOptionViolation, px)
			return
		}
		o.CellSize = px
	}
}

// WithBorder sets the gap around each cell (0 ≤ px, 2·px < cell size).
func WithBorder(px int) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: border cannot be negative (%d)", ErrOptionViolation, px)
			return
		}
		o.Border = px
	}
}

// WithDelay sets the GIF frame delay in 100ths of a second (must be ≥ 0).
func WithDelay(hundredths int) Option {
	return func(o *Options) {
		if hundredths < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%d)", ErrOptionViolation, hundredths)
			return
		}
		o.Delay = hundredths
	}
}

// WithPalette overrides colors for the states present in p.
func WithPalette(p map[State]color.Color) Option {
	return func(o *Options) {
		merged := make(map[State]color.Color, len(DefaultPalette))
		for s, c := range o.Palette {
			merged[s] = c
		}
		for s, c := range p {
			merged[s] = c
		}
		o.Palette = merged
	}
}

// build applies opts and validates the combination.
func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if 2*o.Border >= o.CellSize {
		return o, fmt.Errorf("%w: border %d leaves no room in a %d px cell", ErrOptionViolation, o.Border, o.CellSize)
	}
	return o, nil
}
