package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/runlog"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/solver"
)

// SolveResponse is the outcome of one solve.
type SolveResponse struct {
	solver.Outcome
	Cached bool   `json:"cached"`
	RunID  string `json:"run_id,omitempty"`
}

// CompareResponse lists outcomes in request order.
type CompareResponse struct {
	Outcomes []solver.Outcome `json:"outcomes"`
}

// ScenarioSummary describes a built-in scenario.
type ScenarioSummary struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Height      int       `json:"height"`
	Width       int       `json:"width"`
	Start       grid.Cell `json:"start"`
	Goal        grid.Cell `json:"goal"`
	Algorithm   string    `json:"algorithm,omitempty"`
	Heuristic   string    `json:"heuristic,omitempty"`
	Maze        string    `json:"maze,omitempty"`
}

// Summarize describes sc for listings.
func Summarize(sc *scenario.Scenario) ScenarioSummary {
	start, goal := sc.Endpoints()
	return ScenarioSummary{
		Name:        sc.Name,
		Description: sc.Description,
		Height:      sc.Grid().Height(),
		Width:       sc.Grid().Width(),
		Start:       start,
		Goal:        goal,
		Algorithm:   sc.Algorithm,
		Heuristic:   sc.Heuristic,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// solve runs p through the cache, metrics and run log.
func (s *Server) solve(ctx context.Context, name string, p problem) (SolveResponse, error) {
	key := p.cacheKey()
	if o, ok := s.cache.Get(key); ok {
		metrics.CacheRequests.WithLabelValues("hit").Inc()
		return SolveResponse{Outcome: o, Cached: true}, nil
	}
	metrics.CacheRequests.WithLabelValues("miss").Inc()

	o, err := solver.Run(p.g, p.start, p.goal, p.method)
	if err != nil {
		return SolveResponse{}, err
	}
	metrics.Observe(o)
	s.cache.Add(key, o)

	resp := SolveResponse{Outcome: o}
	if s.runs != nil {
		run, err := s.runs.Record(ctx, runlog.FromOutcome(name, p.g, p.start, p.goal, o))
		if err != nil {
			// the search itself succeeded; a history failure is not the caller's problem
			s.log.WithError(err).Warn("record run failed")
		} else {
			resp.RunID = run.ID
		}
	}

	s.log.WithFields(logrus.Fields{
		"method":  o.Method.String(),
		"steps":   o.Steps,
		"visited": len(o.Visited),
	}).Debug("solved")
	return resp, nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	p, err := req.resolve()
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.solve(r.Context(), "", p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	p, err := req.resolve()
	if err != nil {
		writeError(w, err)
		return
	}
	methods := req.Methods
	if len(methods) == 0 {
		methods = solver.DefaultMethods()
	}

	outs, err := solver.Compare(r.Context(), p.g, p.start, p.goal, methods, s.workers)
	if err != nil {
		writeError(w, err)
		return
	}
	for _, o := range outs {
		metrics.Observe(o)
	}
	writeJSON(w, http.StatusOK, CompareResponse{Outcomes: outs})
}

func (s *Server) handleScenarioList(w http.ResponseWriter, _ *http.Request) {
	all := scenario.Builtins()
	out := make([]ScenarioSummary, 0, len(all))
	for _, sc := range all {
		out = append(out, Summarize(sc))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScenarioGet(w http.ResponseWriter, r *http.Request) {
	sc, err := scenario.Builtin(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	sum := Summarize(sc)
	sum.Maze = sc.Grid().String()
	writeJSON(w, http.StatusOK, sum)
}

// handleScenarioSolve solves a built-in scenario; query parameters
// override its algorithm and heuristic.
func (s *Server) handleScenarioSolve(w http.ResponseWriter, r *http.Request) {
	sc, err := scenario.Builtin(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	m := solver.Method{Algorithm: sc.Algorithm, Heuristic: sc.Heuristic}
	q := r.URL.Query()
	if v := q.Get("algorithm"); v != "" {
		m.Algorithm = v
	}
	if v := q.Get("heuristic"); v != "" {
		m.Heuristic = v
	}
	m, err = solver.Normalize(m)
	if err != nil {
		writeError(w, err)
		return
	}

	start, goal := sc.Endpoints()
	resp, err := s.solve(r.Context(), sc.Name, problem{g: sc.Grid(), start: start, goal: goal, method: m})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
