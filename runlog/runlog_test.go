package runlog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/runlog"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/solver"
)

func openStore(t *testing.T) *runlog.Store {
	t.Helper()
	s, err := runlog.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func solved(t *testing.T, name string, m solver.Method) runlog.Run {
	t.Helper()
	sc, err := scenario.Builtin(name)
	require.NoError(t, err)
	start, goal := sc.Endpoints()
	o, err := solver.Run(sc.Grid(), start, goal, m)
	require.NoError(t, err)
	return runlog.FromOutcome(sc.Name, sc.Grid(), start, goal, o)
}

func TestRecordAndGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	in := solved(t, "small", solver.Method{Algorithm: solver.AStar, Heuristic: "manhattan"})
	rec, err := s.Record(ctx, in)
	require.NoError(t, err)
	assert.Len(t, rec.ID, 36)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, "small", got.Scenario)
	assert.Equal(t, "astar/manhattan", got.Method.String())
	assert.Equal(t, 7, got.Height)
	assert.Equal(t, grid.Cell{Row: 6, Col: 6}, got.Goal)
	assert.Equal(t, 17, got.Steps)
	assert.Equal(t, 28, got.Visited)
	assert.Equal(t, in.Path, got.Path)
	assert.Equal(t, in.Duration, got.Duration)
}

func TestGet_NotFound(t *testing.T) {
	s := openStore(t)
	_, err := s.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, runlog.ErrRunNotFound)
}

func TestRecord_UnreachableKeepsEmptyPath(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	rec, err := s.Record(ctx, solved(t, "unreachable", solver.Method{Algorithm: solver.BFS}))
	require.NoError(t, err)

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, got.Steps)
	assert.NotNil(t, got.Path)
	assert.Empty(t, got.Path)
}

func TestList_NewestFirst(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		r := solved(t, "lab", solver.Method{Algorithm: solver.BFS})
		r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		rec, err := s.Record(ctx, r)
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	runs, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[1], runs[1].ID)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStats(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	for _, name := range []string{"small", "unreachable"} {
		for _, m := range []solver.Method{{Algorithm: solver.BFS}, {Algorithm: solver.AStar, Heuristic: "zero"}} {
			_, err := s.Record(ctx, solved(t, name, m))
			require.NoError(t, err)
		}
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "astar/zero", stats[0].Method.String())
	assert.Equal(t, "bfs", stats[1].Method.String())
	for _, st := range stats {
		assert.Equal(t, 2, st.Runs)
		assert.Equal(t, 1, st.Found)
		assert.InDelta(t, 31.0, st.AvgVisited, 1e-9)
	}
}
