// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/connectn/internal/config"
)

// Outcome is how a recorded game ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeDraw Outcome = "draw"
	OutcomeQuit Outcome = "quit"
)

// Recorder stores finished games. *Store implements it.
type Recorder interface {
	SaveResult(r Result) (int64, error)
}

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

var _ Recorder = (*Store)(nil)

// Seat is one player of a recorded game.
type Seat struct {
	Name string
	Kind string
	Won  bool // Set on exactly one seat of a won game
}

// Result represents a single finished game.
type Result struct {
	ID              int64
	Outcome         Outcome
	Width           int
	Height          int
	TokensToConnect int
	Players         []Seat
	Winner          string // Name of the winning seat; empty unless Outcome is OutcomeWon
	Moves           int
	CreatedAt       time.Time
}

// Standing is one row of the win leaderboard.
type Standing struct {
	Name   string
	Played int
	Wins   int
	Draws  int
}

// Summary contains aggregated statistics over every recorded game.
type Summary struct {
	Games      int
	Won        int
	Draws      int
	Quits      int
	TotalMoves int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath = config.ExpandHome(dbPath)

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			tokens_to_connect INTEGER NOT NULL,
			winner TEXT,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_outcome ON results(outcome);

		CREATE TABLE IF NOT EXISTS result_players (
			result_id INTEGER NOT NULL REFERENCES results(id) ON DELETE CASCADE,
			seat INTEGER NOT NULL,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (result_id, seat)
		);
		CREATE INDEX IF NOT EXISTS idx_result_players_name ON result_players(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and its players.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if err := r.validate(); err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var winner sql.NullString
	if seat, ok := r.winningSeat(); ok {
		winner = sql.NullString{String: r.Players[seat].Name, Valid: true}
	}

	res, err := tx.Exec(
		`INSERT INTO results (outcome, width, height, tokens_to_connect, winner, moves)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(r.Outcome), r.Width, r.Height, r.TokensToConnect, winner, r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for seat, p := range r.Players {
		won := 0
		if r.Outcome == OutcomeWon && p.Won {
			won = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO result_players (result_id, seat, name, kind, won)
			 VALUES (?, ?, ?, ?, ?)`,
			id, seat, p.Name, p.Kind, won,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save player %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return id, nil
}

// winningSeat returns the index of the seat marked as the winner.
func (r Result) winningSeat() (int, bool) {
	if r.Outcome != OutcomeWon {
		return 0, false
	}
	for i, p := range r.Players {
		if p.Won {
			return i, true
		}
	}
	return 0, false
}

func (r Result) validate() error {
	switch r.Outcome {
	case OutcomeWon:
		winners := 0
		for _, p := range r.Players {
			if p.Won {
				winners++
			}
		}
		if winners != 1 {
			return fmt.Errorf("won result with %d winning seats", winners)
		}
	case OutcomeDraw, OutcomeQuit:
	default:
		return fmt.Errorf("unknown outcome %q", r.Outcome)
	}
	if len(r.Players) == 0 {
		return errors.New("result without players")
	}
	return nil
}

// RecentResults retrieves the most recent N results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, width, height, tokens_to_connect, winner, moves, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var winner sql.NullString
		var createdAt any
		if err := rows.Scan(&r.ID, &outcome, &r.Width, &r.Height, &r.TokensToConnect,
			&winner, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		if winner.Valid {
			r.Winner = winner.String
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range results {
		seats, err := s.seats(results[i].ID)
		if err != nil {
			return nil, err
		}
		results[i].Players = seats
	}
	return results, nil
}

// seats loads the players of one result in seat order.
func (s *Store) seats(resultID int64) ([]Seat, error) {
	rows, err := s.db.Query(
		`SELECT name, kind, won FROM result_players WHERE result_id = ? ORDER BY seat`,
		resultID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var seats []Seat
	for rows.Next() {
		var seat Seat
		var won int
		if err := rows.Scan(&seat.Name, &seat.Kind, &won); err != nil {
			return nil, fmt.Errorf("storage: cannot scan player: %w", err)
		}
		seat.Won = won != 0
		seats = append(seats, seat)
	}
	return seats, rows.Err()
}

// Leaderboard returns players ordered by wins, then by name.
func (s *Store) Leaderboard(limit int) ([]Standing, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT rp.name,
		        COUNT(*),
		        COALESCE(SUM(rp.won), 0),
		        COALESCE(SUM(CASE WHEN r.outcome = 'draw' THEN 1 ELSE 0 END), 0)
		 FROM result_players rp
		 JOIN results r ON r.id = rp.result_id
		 GROUP BY rp.name
		 ORDER BY 3 DESC, rp.name ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.Name, &st.Played, &st.Wins, &st.Draws); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standing: %w", err)
		}
		standings = append(standings, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return standings, nil
}

// Summary retrieves aggregated statistics over all results.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'draw' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'quit' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(moves), 0)
		 FROM results`,
	).Scan(&sum.Games, &sum.Won, &sum.Draws, &sum.Quits, &sum.TotalMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTime(lastPlayed)
	}

	return sum, nil
}

// ClearResults deletes every recorded game.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM result_players"); err != nil {
		return fmt.Errorf("storage: cannot clear players: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, strings.TrimSpace(t)); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
