package render

import "strings"

var glyphs = map[State]byte{
	Empty:    '.',
	Wall:     '#',
	Visited:  'o',
	Path:     '*',
	Frontier: '~',
}

// Text draws f as ASCII, one row per line: 'S' and 'G' for the endpoints,
// '#' wall, '.' empty, 'o' visited, '~' frontier, '*' path.
func Text(f Frame) string {
	var b strings.Builder
	b.Grow(f.Height * (f.Width + 1))
	for r := 0; r < f.Height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < f.Width; c++ {
			s := f.Cells[r*f.Width+c]
			switch {
			case s == Endpoint && r == f.Start.Row && c == f.Start.Col:
				b.WriteByte('S')
			case s == Endpoint:
				b.WriteByte('G')
			default:
				b.WriteByte(glyphs[s])
			}
		}
	}
	return b.String()
}
