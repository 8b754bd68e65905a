package metrics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists experiment records, keyed by run.
type SQLiteStore struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS agent_configs (
			run_id TEXT NOT NULL,
			id INTEGER NOT NULL,
			searcher TEXT NOT NULL,
			depth INTEGER NOT NULL,
			evaluation TEXT NOT NULL,
			PRIMARY KEY (run_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			run_id TEXT NOT NULL,
			id INTEGER NOT NULL,
			agent INTEGER NOT NULL,
			layout TEXT NOT NULL,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			score REAL NOT NULL,
			moves INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			PRIMARY KEY (run_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS moves (
			run_id TEXT NOT NULL,
			game INTEGER NOT NULL,
			step INTEGER NOT NULL,
			agent INTEGER NOT NULL,
			action TEXT NOT NULL,
			searcher TEXT NOT NULL,
			depth INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			nodes INTEGER NOT NULL,
			leaves INTEGER NOT NULL,
			prunes INTEGER NOT NULL,
			PRIMARY KEY (run_id, game, step, agent)
		)`,
	}
	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, errors.New("sqlite store is not initialized")
	}
	return s.db, nil
}

func (s *SQLiteStore) SaveAgentConfigs(ctx context.Context, runID string, configs []AgentConfig) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, config := range configs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO agent_configs (run_id, id, searcher, depth, evaluation)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(run_id, id) DO UPDATE SET
					searcher = excluded.searcher,
					depth = excluded.depth,
					evaluation = excluded.evaluation
			`, runID, config.ID, config.Searcher, config.Depth, config.Evaluation)
			if err != nil {
				return fmt.Errorf("save agent config %d: %w", config.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) SaveGame(ctx context.Context, runID string, record GameRecord, moves []MoveRecord) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO games (run_id, id, agent, layout, seed, outcome, score, moves, duration_ns)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, id) DO UPDATE SET
				agent = excluded.agent,
				layout = excluded.layout,
				seed = excluded.seed,
				outcome = excluded.outcome,
				score = excluded.score,
				moves = excluded.moves,
				duration_ns = excluded.duration_ns
		`, runID, record.ID, record.Agent, record.Layout, int64(record.Seed), record.Outcome(),
			record.Score, record.TotalMoves, record.Duration.Nanoseconds())
		if err != nil {
			return fmt.Errorf("save game %d: %w", record.ID, err)
		}

		for _, move := range moves {
			_, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO moves
					(run_id, game, step, agent, action, searcher, depth, duration_ns, nodes, leaves, prunes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, runID, move.Game, move.Step, move.Agent, move.Action, move.Searcher, move.Depth,
				move.Duration.Nanoseconds(), move.Nodes, move.Leaves, move.Prunes)
			if err != nil {
				return fmt.Errorf("save move %d of game %d: %w", move.Step, move.Game, err)
			}
		}
		return nil
	})
}

// Games returns the stored game records of a run in ID order. Timestamps are not stored.
func (s *SQLiteStore) Games(ctx context.Context, runID string) ([]GameRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, agent, layout, seed, outcome, score, moves, duration_ns
		FROM games WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var (
			record   GameRecord
			seed     int64
			outcome  string
			duration int64
		)
		err := rows.Scan(&record.ID, &record.Agent, &record.Layout, &seed, &outcome,
			&record.Score, &record.TotalMoves, &duration)
		if err != nil {
			return nil, err
		}
		record.Seed = uint64(seed)
		record.Won = outcome == "win"
		record.Lost = outcome == "lose"
		record.Duration = time.Duration(duration)
		records = append(records, record)
	}
	return records, rows.Err()
}

// MoveCount returns how many move records a game of a run has.
func (s *SQLiteStore) MoveCount(ctx context.Context, runID string, game int) (int, error) {
	db, err := s.getDB()
	if err != nil {
		return 0, err
	}

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM moves WHERE run_id = ? AND game = ?`, runID, game).Scan(&count)
	return count, err
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
