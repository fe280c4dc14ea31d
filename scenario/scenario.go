package scenario

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	builtinOnce sync.Once
	builtins    map[string]*Scenario
)

// Parse decodes a YAML document into a validated Scenario.
// Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		if errors.Is(err, ErrInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scenario file. A missing name defaults to the
// file's base name without extension.
func Load(file string) (*Scenario, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", file, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	return s, nil
}

// Encode writes s as YAML with two-space indentation.
func Encode(w io.Writer, s *Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// resolve builds the grid and fills endpoints from maze markers.
func (s *Scenario) resolve() error {
	var (
		g   *grid.Grid
		m   grid.Markers
		err error
	)
	switch {
	case s.Maze != "" && len(s.Cells) > 0:
		return fmt.Errorf("%w: %q sets both grid and maze", ErrInvalid, s.Name)
	case s.Maze != "":
		g, m, err = grid.Parse(s.Maze)
	case len(s.Cells) > 0:
		g, err = grid.New(s.Cells)
	default:
		return fmt.Errorf("%w: %q has neither grid nor maze", ErrInvalid, s.Name)
	}
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalid, s.Name, err)
	}

	if s.Start == nil && m.HasStart {
		s.Start = &Point{Row: m.Start.Row, Col: m.Start.Col}
	}
	if s.Goal == nil && m.HasGoal {
		s.Goal = &Point{Row: m.Goal.Row, Col: m.Goal.Col}
	}
	if s.Start == nil || s.Goal == nil {
		return fmt.Errorf("%w: %q needs start and goal", ErrInvalid, s.Name)
	}
	s.g = g
	return nil
}

// Grid returns the validated grid.
func (s *Scenario) Grid() *grid.Grid { return s.g }

// Endpoints returns the start and goal cells.
func (s *Scenario) Endpoints() (start, goal grid.Cell) {
	return s.Start.Cell(), s.Goal.Cell()
}

// loadBuiltins parses the embedded scenarios once. A broken embedded file
// is a build defect and panics.
func loadBuiltins() {
	builtins = make(map[string]*Scenario)
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(err)
		}
		s, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("scenario: builtin %s: %v", e.Name(), err))
		}
		builtins[s.Name] = s
	}
}

// Builtin returns a copy of the named built-in scenario.
func Builtin(name string) (*Scenario, error) {
	builtinOnce.Do(loadBuiltins)
	s, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	cp := *s
	start, goal := *s.Start, *s.Goal
	cp.Start, cp.Goal = &start, &goal
	return &cp, nil
}

// Names returns the built-in scenario names, sorted.
func Names() []string {
	builtinOnce.Do(loadBuiltins)
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Builtins returns copies of all built-in scenarios, sorted by name.
func Builtins() []*Scenario {
	names := Names()
	out := make([]*Scenario, 0, len(names))
	for _, n := range names {
		s, _ := Builtin(n)
		out = append(out, s)
	}
	return out
}

// Resolve returns the built-in scenario called ref, or loads ref as a file
// when no built-in has that name.
func Resolve(ref string) (*Scenario, error) {
	s, err := Builtin(ref)
	if err == nil {
		return s, nil
	}
	if _, statErr := os.Stat(ref); statErr != nil {
		return nil, err
	}
	return Load(ref)
}
