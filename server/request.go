package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/solver"
)

// errBadRequest marks request-level validation failures.
var errBadRequest = errors.New("bad request")

// SolveRequest is the body of POST /v1/solve and the first message of a
// /v1/stream session. Exactly one of Grid and Maze is set; Start and Goal
// may come from 'S' / 'G' markers in Maze.
type SolveRequest struct {
	Grid      [][]int    `json:"grid,omitempty"`
	Maze      string     `json:"maze,omitempty"`
	Start     *grid.Cell `json:"start,omitempty"`
	Goal      *grid.Cell `json:"goal,omitempty"`
	Algorithm string     `json:"algorithm,omitempty"`
	Heuristic string     `json:"heuristic,omitempty"`
}

// CompareRequest is the body of POST /v1/compare. Empty Methods means
// solver.DefaultMethods.
type CompareRequest struct {
	SolveRequest
	Methods []solver.Method `json:"methods,omitempty"`
}

// problem is a validated request.
type problem struct {
	g           *grid.Grid
	start, goal grid.Cell
	method      solver.Method
}

// resolve validates req into a problem.
func (req SolveRequest) resolve() (problem, error) {
	var (
		p   problem
		m   grid.Markers
		err error
	)
	switch {
	case req.Maze != "" && len(req.Grid) > 0:
		return p, fmt.Errorf("%w: set either grid or maze, not both", errBadRequest)
	case req.Maze != "":
		p.g, m, err = grid.Parse(req.Maze)
	default:
		p.g, err = grid.New(req.Grid)
	}
	if err != nil {
		return p, err
	}

	switch {
	case req.Start != nil:
		p.start = *req.Start
	case m.HasStart:
		p.start = m.Start
	default:
		return p, fmt.Errorf("%w: start is required", errBadRequest)
	}
	switch {
	case req.Goal != nil:
		p.goal = *req.Goal
	case m.HasGoal:
		p.goal = m.Goal
	default:
		return p, fmt.Errorf("%w: goal is required", errBadRequest)
	}

	p.method, err = solver.Normalize(solver.Method{Algorithm: req.Algorithm, Heuristic: req.Heuristic})
	return p, err
}

// cacheKey fingerprints the grid, endpoints and method.
func (p problem) cacheKey() string {
	d := xxhash.New()
	_, _ = d.WriteString(p.g.String())
	_, _ = fmt.Fprintf(d, "|%v|%v|%s", p.start, p.goal, p.method)
	return fmt.Sprintf("%016x", d.Sum64())
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, scenario.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrBadCellValue),
		errors.Is(err, grid.ErrBadMazeRune),
		errors.Is(err, solver.ErrUnknownAlgorithm),
		errors.Is(err, astar.ErrUnknownHeuristic):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// decodeBody reads a JSON body into v, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": "..."} with the status derived from err.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}
