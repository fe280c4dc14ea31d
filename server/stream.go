package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/solver"
)

const (
	wsReadLimit  = maxBodySize
	writeTimeout = 10 * time.Second
)

// StreamEvent is one message of a /v1/stream session.
//
//	{"type":"visit","index":0,"cell":{"row":0,"col":0}}
//	{"type":"done","steps":17,"visited":28,"path":[...]}
//	{"type":"error","error":"..."}
type StreamEvent struct {
	Type    string        `json:"type"`
	Index   int           `json:"index"`
	Cell    *grid.Cell    `json:"cell,omitempty"`
	Method  string        `json:"method,omitempty"`
	Steps   int           `json:"steps,omitempty"`
	Visited int           `json:"visited,omitempty"`
	Path    []grid.Cell   `json:"path,omitempty"`
	Error   string        `json:"error,omitempty"`
	Elapsed time.Duration `json:"elapsed,omitempty"`
}

// handleStream reads one SolveRequest, then replays the visited trace one
// event per cell, paced by the stream delay, and finishes with a done event.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("websocket accept failed")
		return
	}
	defer conn.CloseNow() //nolint:errcheck // best-effort close on teardown
	conn.SetReadLimit(wsReadLimit)

	metrics.StreamConnections.Inc()
	defer metrics.StreamConnections.Dec()

	ctx := r.Context()
	var req SolveRequest
	if err := wsjson.Read(ctx, conn, &req); err != nil {
		if websocket.CloseStatus(err) == -1 {
			s.log.WithError(err).Debug("stream read failed")
		}
		return
	}

	p, err := req.resolve()
	if err == nil {
		var o solver.Outcome
		if o, err = solver.Run(p.g, p.start, p.goal, p.method); err == nil {
			metrics.Observe(o)
			err = s.replay(ctx, conn, o)
		}
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || websocket.CloseStatus(err) != -1 {
			return
		}
		_ = s.send(ctx, conn, StreamEvent{Type: "error", Error: err.Error()})
		conn.Close(websocket.StatusPolicyViolation, "invalid request") //nolint:errcheck // best-effort
		return
	}
	conn.Close(websocket.StatusNormalClosure, "done") //nolint:errcheck // best-effort
}

// replay writes the visit events and the final done event.
func (s *Server) replay(ctx context.Context, conn *websocket.Conn, o solver.Outcome) error {
	var tick <-chan time.Time
	if s.delay > 0 {
		t := time.NewTicker(s.delay)
		defer t.Stop()
		tick = t.C
	}

	for i := range o.Visited {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if err := s.send(ctx, conn, StreamEvent{Type: "visit", Index: i, Cell: &o.Visited[i]}); err != nil {
			return err
		}
	}
	return s.send(ctx, conn, StreamEvent{
		Type:    "done",
		Method:  o.Method.String(),
		Steps:   o.Steps,
		Visited: len(o.Visited),
		Path:    o.Path,
		Elapsed: o.Duration,
	})
}

func (s *Server) send(ctx context.Context, conn *websocket.Conn, ev StreamEvent) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, ev)
}
