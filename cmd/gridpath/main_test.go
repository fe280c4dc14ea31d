package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/nim"
	"github.com/katalvlaran/gridpath/runlog"
	"github.com/katalvlaran/gridpath/solver"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSolveCmd_Table(t *testing.T) {
	out, err := execute(t, "solve", "small")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{"astar/euclidean", "17", "28"}, strings.Fields(lines[2])[:3])
	assert.Contains(t, out, "path: down down right right up up right right down")
}

func TestSolveCmd_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "solve", "small", "--algorithm", "bfs")
	require.NoError(t, err)

	var o solver.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &o))
	assert.Equal(t, solver.Method{Algorithm: solver.BFS}, o.Method)
	assert.Equal(t, 17, o.Steps)
	assert.Len(t, o.Visited, 31)
}

func TestSolveCmd_Unreachable(t *testing.T) {
	out, err := execute(t, "solve", "unreachable", "--heuristic", "zero")
	require.NoError(t, err)
	assert.Equal(t, []string{"astar/zero", "-", "31"}, strings.Fields(strings.Split(out, "\n")[2])[:3])
	assert.NotContains(t, out, "path:")
}

func TestSolveCmd_Errors(t *testing.T) {
	_, err := execute(t, "solve")
	assert.Error(t, err)

	_, err = execute(t, "solve", "no-such-scenario")
	assert.Error(t, err)

	_, err = execute(t, "solve", "small", "--heuristic", "octile")
	assert.Error(t, err)

	_, err = execute(t, "solve", "small", "--start", "3")
	assert.Error(t, err)

	_, err = execute(t, "--log-format", "xml", "solve", "small")
	assert.Error(t, err)
}

func TestSolveCmd_RecordAndHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	_, err := execute(t, "solve", "lab", "--record", "--db", db)
	require.NoError(t, err)
	_, err = execute(t, "solve", "lab", "--algorithm", "bfs", "--record", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "--format", "json", "history", "--db", db)
	require.NoError(t, err)
	var runs []runlog.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, "bfs", runs[0].Method.String(), "newest first")
	assert.Equal(t, 65, runs[0].Visited)
	assert.Equal(t, 21, runs[1].Steps)

	out, err = execute(t, "history", runs[1].ID, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, runs[1].ID)
	assert.Contains(t, out, "path: ")

	out, err = execute(t, "history", "--stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "astar/euclidean")
	assert.Contains(t, out, "bfs")

	_, err = execute(t, "history", "missing", "--db", db)
	assert.ErrorIs(t, err, runlog.ErrRunNotFound)
}

func TestCompareCmd(t *testing.T) {
	out, err := execute(t, "compare", "small", "--format", "json")
	require.NoError(t, err)

	var outs []solver.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &outs))
	require.Len(t, outs, 5)

	visited := make(map[string]int, len(outs))
	for _, o := range outs {
		assert.Equal(t, 17, o.Steps, o.Method.String())
		visited[o.Method.String()] = len(o.Visited)
	}
	assert.Equal(t, map[string]int{
		"astar/chebyshev": 29,
		"astar/euclidean": 28,
		"astar/manhattan": 28,
		"astar/zero":      31,
		"bfs":             31,
	}, visited)
}

func TestCompareCmd_Methods(t *testing.T) {
	out, err := execute(t, "compare", "lab", "--methods", "astar/manhattan,bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "astar/manhattan")
	assert.Contains(t, out, "bfs")
	assert.NotContains(t, out, "astar/euclidean")

	_, err = execute(t, "compare", "lab", "--methods", "dfs")
	assert.ErrorIs(t, err, solver.ErrUnknownAlgorithm)
}

func TestRenderCmd_Text(t *testing.T) {
	out, err := execute(t, "render", "small")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "S"), out)
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "G")

	first, err := execute(t, "render", "small", "--frame", "0")
	require.NoError(t, err)
	assert.NotContains(t, first, "*")
}

func TestRenderCmd_Files(t *testing.T) {
	dir := t.TempDir()

	gifPath := filepath.Join(dir, "small.gif")
	_, err := execute(t, "render", "small", "--format", "gif", "--cell-size", "6", "--border", "1", "-o", gifPath)
	require.NoError(t, err)
	data, err := os.ReadFile(gifPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("GIF89a")))

	pngPath := filepath.Join(dir, "small.png")
	_, err = execute(t, "render", "small", "--format", "png", "--cell-size", "6", "--border", "1", "--algorithm", "bfs", "-o", pngPath)
	require.NoError(t, err)
	data, err = os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	_, err = execute(t, "render", "small", "--format", "svg")
	assert.Error(t, err)
}

func TestScenariosCmd(t *testing.T) {
	out, err := execute(t, "scenarios")
	require.NoError(t, err)
	for _, name := range []string{"small", "unreachable", "lab", "big", "big-inner", "open-field"} {
		assert.Contains(t, out, name)
	}

	out, err = execute(t, "scenarios", "show", "small")
	require.NoError(t, err)
	assert.Contains(t, out, "name: small")
	assert.Contains(t, out, "maze: |")
}

func TestNimCmd_Depths(t *testing.T) {
	out, err := execute(t, "nim", "3", "4", "5", "--depths", "1,5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"1", "pile", "0:", "-2", "+1", "13"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"5", "pile", "0:", "-1", "+1", "1868"}, strings.Fields(lines[3]))
}

func TestNimCmd_Play(t *testing.T) {
	out, err := execute(t, "--format", "json", "nim", "2", "3", "--depths", "3", "--play")
	require.NoError(t, err)

	var g nim.Game
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	assert.Equal(t, []nim.Move{{Pile: 1, Sticks: 1}, {Pile: 0, Sticks: 1}, {Pile: 1, Sticks: 2}}, g.Moves)
	assert.Equal(t, nim.Max, g.Winner)

	out, err = execute(t, "nim", "2", "3", "--depths", "3", "--play")
	require.NoError(t, err)
	assert.Contains(t, out, "winner: max")
}

func TestNimCmd_Errors(t *testing.T) {
	_, err := execute(t, "nim", "3", "x")
	assert.Error(t, err)

	_, err = execute(t, "nim", "3", "-1")
	assert.Error(t, err)

	_, err = execute(t, "nim", "1")
	assert.ErrorIs(t, err, nim.ErrGameOver)

	_, err = execute(t, "nim", "3", "4", "--depths", "0")
	assert.ErrorIs(t, err, nim.ErrOptionViolation)
}
