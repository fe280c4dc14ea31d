// Package runlog keeps a SQLite history of solved searches so runs can be
// listed and compared after the fact.
package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/solver"
)

// ErrRunNotFound is returned by Get for an unknown run ID.
var ErrRunNotFound = errors.New("runlog: run not found")

// DefaultListLimit applies when List is called with limit ≤ 0.
const DefaultListLimit = 20

// timeLayout has fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one recorded search.
type Run struct {
	ID        string
	CreatedAt time.Time
	Scenario  string
	Method    solver.Method
	Height    int
	Width     int
	Start     grid.Cell
	Goal      grid.Cell
	Steps     int
	Visited   int
	Duration  time.Duration
	Path      []grid.Cell
}

// FromOutcome builds an unsaved Run from a solver outcome.
func FromOutcome(scenario string, g *grid.Grid, start, goal grid.Cell, o solver.Outcome) Run {
	return Run{
		Scenario: scenario,
		Method:   o.Method,
		Height:   g.Height(),
		Width:    g.Width(),
		Start:    start,
		Goal:     goal,
		Steps:    o.Steps,
		Visited:  len(o.Visited),
		Duration: o.Duration,
		Path:     o.Path,
	}
}

// MethodStats aggregates the runs of one method.
type MethodStats struct {
	Method      solver.Method
	Runs        int
	Found       int
	AvgVisited  float64
	AvgDuration time.Duration
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time; also keeps ":memory:" on a single database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			scenario TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			heuristic TEXT NOT NULL,
			height INTEGER NOT NULL,
			width INTEGER NOT NULL,
			start_row INTEGER NOT NULL,
			start_col INTEGER NOT NULL,
			goal_row INTEGER NOT NULL,
			goal_col INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			visited INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			path TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS runs_created_at ON runs(created_at);`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts r, assigning a UUID and creation time when unset, and
// returns the stored row.
func (s *Store) Record(ctx context.Context, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Path == nil {
		r.Path = []grid.Cell{}
	}
	path, err := json.Marshal(r.Path)
	if err != nil {
		return Run{}, fmt.Errorf("encode path: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, scenario, algorithm, heuristic, height, width,
			start_row, start_col, goal_row, goal_col, steps, visited, duration_ns, path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.CreatedAt.UTC().Format(timeLayout),
		r.Scenario,
		r.Method.Algorithm,
		r.Method.Heuristic,
		r.Height, r.Width,
		r.Start.Row, r.Start.Col,
		r.Goal.Row, r.Goal.Col,
		r.Steps,
		r.Visited,
		int64(r.Duration),
		string(path),
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return r, nil
}

const selectRun = `SELECT id, created_at, scenario, algorithm, heuristic, height, width,
	start_row, start_col, goal_row, goal_col, steps, visited, duration_ns, path FROM runs`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(sc rowScanner) (Run, error) {
	var (
		r       Run
		created string
		dur     int64
		path    string
	)
	err := sc.Scan(&r.ID, &created, &r.Scenario, &r.Method.Algorithm, &r.Method.Heuristic,
		&r.Height, &r.Width, &r.Start.Row, &r.Start.Col, &r.Goal.Row, &r.Goal.Col,
		&r.Steps, &r.Visited, &dur, &path)
	if err != nil {
		return Run{}, err
	}
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(path), &r.Path); err != nil {
		return Run{}, fmt.Errorf("decode path: %w", err)
	}
	r.Duration = time.Duration(dur)
	return r, nil
}

// Get loads one run by ID.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	r, err := scanRun(s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return r, nil
}

// List returns up to limit runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, selectRun+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats aggregates all runs per method, ordered by algorithm and heuristic.
func (s *Store) Stats(ctx context.Context) ([]MethodStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT algorithm, heuristic, COUNT(*),
			SUM(CASE WHEN steps > 0 THEN 1 ELSE 0 END),
			AVG(visited), AVG(duration_ns)
		FROM runs
		GROUP BY algorithm, heuristic
		ORDER BY algorithm, heuristic`)
	if err != nil {
		return nil, fmt.Errorf("run stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []MethodStats
	for rows.Next() {
		var (
			st  MethodStats
			dur float64
		)
		if err := rows.Scan(&st.Method.Algorithm, &st.Method.Heuristic, &st.Runs, &st.Found, &st.AvgVisited, &dur); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		st.AvgDuration = time.Duration(dur)
		out = append(out, st)
	}
	return out, rows.Err()
}
